package i18n

var es = map[string]string{
	// Common
	"common.yes":     "Sí",
	"common.no":      "No",
	"common.save":    "Guardar",
	"common.cancel":  "Cancelar",
	"common.delete":  "Eliminar",
	"common.edit":    "Editar",
	"common.create":  "Crear",
	"common.loading": "Cargando...",
	"common.active":  "Activo",
	"common.error":   "Ocurrió un error",

	// User form
	"users.title":            "Usuarios",
	"users.email":            "Correo electrónico",
	"users.password":         "Contraseña",
	"users.password_hint":    "Dejar en blanco para conservar la contraseña actual",
	"users.first_name":       "Nombre",
	"users.last_name":        "Apellido",
	"users.role":             "Rol",
	"users.countries":        "Países asignados",
	"users.categories":       "Categorías asignadas",
	"users.confirm_delete":   "¿Eliminar este usuario?",
	"users.created":          "Usuario creado",
	"users.updated":          "Usuario actualizado",
	"users.deleted":          "Usuario eliminado",

	// Countries
	"countries.title":          "Países",
	"countries.name":           "Nombre",
	"countries.code":           "Código",
	"countries.confirm_delete": "¿Eliminar este país?",
	"countries.created":        "País creado",
	"countries.updated":        "País actualizado",
	"countries.deleted":        "País eliminado",

	// Categories
	"categories.title":          "Categorías",
	"categories.name":           "Nombre",
	"categories.description":    "Descripción",
	"categories.products":       "Productos",
	"categories.confirm_delete": "¿Eliminar esta categoría?",
	"categories.has_products":   "Esta categoría aún tiene productos asignados y no puede eliminarse",
	"categories.created":        "Categoría creada",
	"categories.updated":        "Categoría actualizada",
	"categories.deleted":        "Categoría eliminada",

	// Dashboard
	"dashboard.title":          "Panel",
	"dashboard.stock_by_cat":   "Stock por categoría",
	"dashboard.movements":      "Movimientos (últimos días)",
	"dashboard.countries":      "Países",
	"dashboard.alerts":         "Alertas de stock bajo",
	"dashboard.alerts_none":    "Sin alertas de stock bajo",
	"dashboard.alert_critical": "Crítico",
	"dashboard.alert_warning":  "Advertencia",
	"dashboard.more":           "más",
	"dashboard.total":          "Total",
	"dashboard.no_data":        "Sin datos disponibles",
	"dashboard.entries":        "Entradas",
	"dashboard.exits":          "Salidas",

	// Purge workflow
	"purge.title":            "Eliminar datos del país",
	"purge.country":          "País",
	"purge.mode":             "Qué eliminar",
	"purge.mode_products":    "Productos",
	"purge.mode_movements":   "Movimientos",
	"purge.mode_all":         "Todo",
	"purge.include_moves":    "Eliminar también los movimientos asociados",
	"purge.password":         "Contraseña de operador",
	"purge.password_confirm": "Confirmar contraseña",
	"purge.warning":          "Esta operación es irreversible. Se eliminarán todos los datos seleccionados del país.",
	"purge.confirm":          "¿Está absolutamente seguro?",
	"purge.running":          "Eliminando...",
	"purge.done":             "Eliminación completada",
	"purge.failed":           "La eliminación falló",
	"purge.mismatch":         "Las contraseñas no coinciden",
	"purge.need_country":     "Seleccione un país primero",
	"purge.need_password":    "Ingrese la contraseña de operador",
}
