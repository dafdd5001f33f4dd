package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventaria/inventaria/pkg/domain"
)

var testRoles = []domain.Role{
	{ID: 1, Name: "Administrator", Tag: "admin"},
	{ID: 2, Name: "Comercial", Tag: "commercial"},
	{ID: 3, Name: "Warehouse", Tag: "warehouse"},
	// Legacy server without role tags, Spanish display name.
	{ID: 4, Name: "comercial"},
}

func validInput() UserInput {
	return UserInput{
		Email:      "a@b.com",
		Password:   "x",
		FirstName:  "A",
		LastName:   "B",
		RoleID:     "1",
		CountryIDs: []string{"2"},
	}
}

func TestValidateUser(t *testing.T) {
	t.Run("valid creation input passes", func(t *testing.T) {
		errs := ValidateUser(validInput(), testRoles)
		assert.Empty(t, errs)
	})

	t.Run("rules are evaluated independently", func(t *testing.T) {
		errs := ValidateUser(UserInput{}, testRoles)
		for _, field := range []string{"email", "password", "first_name", "last_name", "role_id", "country_ids"} {
			assert.Contains(t, errs, field)
		}
	})

	t.Run("email must match pattern", func(t *testing.T) {
		tests := []struct {
			email string
			valid bool
		}{
			{"a@b.com", true},
			{"first.last@sub.domain.org", true},
			{"", false},
			{"plainstring", false},
			{"missing@tld", false},
			{"spaces in@addr.com", false},
		}
		for _, tt := range tests {
			in := validInput()
			in.Email = tt.email
			errs := ValidateUser(in, testRoles)
			if tt.valid {
				assert.NotContains(t, errs, "email", "email %q", tt.email)
			} else {
				assert.Contains(t, errs, "email", "email %q", tt.email)
			}
		}
	})

	t.Run("password optional when editing", func(t *testing.T) {
		in := validInput()
		in.Password = ""
		in.Editing = true
		errs := ValidateUser(in, testRoles)
		assert.NotContains(t, errs, "password")
	})

	t.Run("names are trimmed before the empty check", func(t *testing.T) {
		in := validInput()
		in.FirstName = "   "
		in.LastName = "\t"
		errs := ValidateUser(in, testRoles)
		assert.Contains(t, errs, "first_name")
		assert.Contains(t, errs, "last_name")
	})

	t.Run("commercial role requires categories", func(t *testing.T) {
		in := validInput()
		in.RoleID = "2"
		in.CategoryIDs = nil
		errs := ValidateUser(in, testRoles)
		assert.Contains(t, errs, "category_ids")

		in.CategoryIDs = []string{"7"}
		errs = ValidateUser(in, testRoles)
		assert.NotContains(t, errs, "category_ids")
	})

	t.Run("spanish role name counts as commercial", func(t *testing.T) {
		in := validInput()
		in.RoleID = "4"
		errs := ValidateUser(in, testRoles)
		assert.Contains(t, errs, "category_ids")
	})

	t.Run("non-commercial role never requires categories", func(t *testing.T) {
		in := validInput()
		in.RoleID = "3"
		in.CategoryIDs = nil
		errs := ValidateUser(in, testRoles)
		assert.NotContains(t, errs, "category_ids")
	})
}

func TestApplyRole(t *testing.T) {
	t.Run("non-commercial role clears categories", func(t *testing.T) {
		in := validInput()
		in.RoleID = "1"
		in.CategoryIDs = []string{"7", "8"}
		in.CategoryID = "7"

		ApplyRole(&in, testRoles)

		assert.Empty(t, in.CategoryIDs)
		assert.Empty(t, in.CategoryID)
	})

	t.Run("commercial role keeps categories", func(t *testing.T) {
		in := validInput()
		in.RoleID = "2"
		in.CategoryIDs = []string{"7"}
		in.CategoryID = "7"

		ApplyRole(&in, testRoles)

		assert.Equal(t, []string{"7"}, in.CategoryIDs)
		assert.Equal(t, "7", in.CategoryID)
	})

	t.Run("unknown role clears categories", func(t *testing.T) {
		in := validInput()
		in.RoleID = "99"
		in.CategoryIDs = []string{"7"}

		ApplyRole(&in, testRoles)

		assert.Empty(t, in.CategoryIDs)
	})
}

func TestBuildPayload(t *testing.T) {
	t.Run("identifiers are coerced to integers", func(t *testing.T) {
		payload, err := BuildPayload(validInput())
		require.NoError(t, err)

		assert.Equal(t, 1, payload["role_id"])
		assert.Equal(t, []int{2}, payload["country_ids"])
		assert.Equal(t, "a@b.com", payload["email"])
		assert.Equal(t, "A", payload["first_name"])
		assert.Equal(t, "B", payload["last_name"])
		assert.Equal(t, "x", payload["password"])
	})

	t.Run("blank password omitted when editing", func(t *testing.T) {
		in := validInput()
		in.Password = ""
		in.Editing = true

		payload, err := BuildPayload(in)
		require.NoError(t, err)

		_, present := payload["password"]
		assert.False(t, present)
	})

	t.Run("changed password included when editing", func(t *testing.T) {
		in := validInput()
		in.Password = "new-secret"
		in.Editing = true

		payload, err := BuildPayload(in)
		require.NoError(t, err)
		assert.Equal(t, "new-secret", payload["password"])
	})

	t.Run("empty category selection omits both category fields", func(t *testing.T) {
		in := validInput()
		in.CategoryIDs = nil
		in.CategoryID = ""

		payload, err := BuildPayload(in)
		require.NoError(t, err)

		_, present := payload["category_ids"]
		assert.False(t, present)
		_, present = payload["category_id"]
		assert.False(t, present)
	})

	t.Run("legacy single category carried alongside the set", func(t *testing.T) {
		in := validInput()
		in.CategoryIDs = []string{"7", "8"}
		in.CategoryID = "7"

		payload, err := BuildPayload(in)
		require.NoError(t, err)

		assert.Equal(t, []int{7, 8}, payload["category_ids"])
		assert.Equal(t, 7, payload["category_id"])
	})

	t.Run("non-numeric identifier fails", func(t *testing.T) {
		in := validInput()
		in.RoleID = "abc"
		_, err := BuildPayload(in)
		assert.Error(t, err)
	})
}
