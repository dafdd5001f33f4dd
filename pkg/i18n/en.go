package i18n

var en = map[string]string{
	// Common
	"common.yes":     "Yes",
	"common.no":      "No",
	"common.save":    "Save",
	"common.cancel":  "Cancel",
	"common.delete":  "Delete",
	"common.edit":    "Edit",
	"common.create":  "Create",
	"common.loading": "Loading...",
	"common.active":  "Active",
	"common.error":   "Something went wrong",

	// User form
	"users.title":            "Users",
	"users.email":            "Email",
	"users.password":         "Password",
	"users.password_hint":    "Leave blank to keep the current password",
	"users.first_name":       "First name",
	"users.last_name":        "Last name",
	"users.role":             "Role",
	"users.countries":        "Assigned countries",
	"users.categories":       "Assigned categories",
	"users.confirm_delete":   "Delete this user?",
	"users.created":          "User created",
	"users.updated":          "User updated",
	"users.deleted":          "User deleted",

	// Countries
	"countries.title":          "Countries",
	"countries.name":           "Name",
	"countries.code":           "Code",
	"countries.confirm_delete": "Delete this country?",
	"countries.created":        "Country created",
	"countries.updated":        "Country updated",
	"countries.deleted":        "Country deleted",

	// Categories
	"categories.title":          "Categories",
	"categories.name":           "Name",
	"categories.description":    "Description",
	"categories.products":       "Products",
	"categories.confirm_delete": "Delete this category?",
	"categories.has_products":   "This category still has products assigned and cannot be deleted",
	"categories.created":        "Category created",
	"categories.updated":        "Category updated",
	"categories.deleted":        "Category deleted",

	// Dashboard
	"dashboard.title":          "Dashboard",
	"dashboard.stock_by_cat":   "Stock by category",
	"dashboard.movements":      "Movements (last days)",
	"dashboard.countries":      "Countries",
	"dashboard.alerts":         "Low stock alerts",
	"dashboard.alerts_none":    "No low stock alerts",
	"dashboard.alert_critical": "Critical",
	"dashboard.alert_warning":  "Warning",
	"dashboard.more":           "more",
	"dashboard.total":          "Total",
	"dashboard.no_data":        "No data available",
	"dashboard.entries":        "Entries",
	"dashboard.exits":          "Exits",

	// Purge workflow
	"purge.title":            "Delete country data",
	"purge.country":          "Country",
	"purge.mode":             "What to delete",
	"purge.mode_products":    "Products",
	"purge.mode_movements":   "Movements",
	"purge.mode_all":         "Everything",
	"purge.include_moves":    "Also delete associated movements",
	"purge.password":         "Operator password",
	"purge.password_confirm": "Confirm password",
	"purge.warning":          "This operation is irreversible. All selected data for the country will be removed.",
	"purge.confirm":          "Are you absolutely sure?",
	"purge.running":          "Deleting...",
	"purge.done":             "Deletion complete",
	"purge.failed":           "Deletion failed",
	"purge.mismatch":         "Passwords do not match",
	"purge.need_country":     "Select a country first",
	"purge.need_password":    "Enter the operator password",
}
