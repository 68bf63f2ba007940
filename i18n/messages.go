package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys used by the categories page.
const (
	CategoriesTitle      = "categories.title"
	CategoriesAdd        = "categories.add"
	CategoriesLoading    = "categories.loading"
	CategoriesError      = "categories.error"
	ColumnID             = "categories.column.id"
	ColumnName           = "categories.column.name"
	ColumnDescription    = "categories.column.description"
	ColumnActive         = "categories.column.active"
	ColumnEdit           = "categories.column.edit"
	ColumnRemove         = "categories.column.remove"
	Yes                  = "common.yes"
	No                   = "common.no"
	Close                = "common.close"
	ConfirmRemoveTitle   = "categories.remove.confirm_title"
	ConfirmRemoveButton  = "categories.remove.confirm_button"
	RemovingTitle        = "categories.remove.pending_title"
	RemovingMessage      = "categories.remove.pending_message"
	RemovedTitle         = "categories.remove.success_title"
	RemovedMessage       = "categories.remove.success_message"
	RemoveFailedTitle    = "categories.remove.failure_title"
	RemoveFailedMessage  = "categories.remove.failure_message"
	NotificationsRegion  = "notifications.region"
	DashboardTitleSuffix = "dashboard.title_suffix"
	ErrorCrossSite       = "error.cross_site"
)

var catalogs = map[language.Tag]map[string]string{
	language.Spanish: {
		CategoriesTitle:      "Categorías",
		CategoriesAdd:        "Agregar",
		CategoriesLoading:    "Cargando categorías...",
		CategoriesError:      "Error",
		ColumnID:             "Id",
		ColumnName:           "Nombre",
		ColumnDescription:    "Descripción",
		ColumnActive:         "Activo",
		ColumnEdit:           "Editar",
		ColumnRemove:         "Eliminar",
		Yes:                  "Sí",
		No:                   "No",
		Close:                "Cerrar",
		ConfirmRemoveTitle:   "¿Quieres eliminar %s?",
		ConfirmRemoveButton:  "Eliminar",
		RemovingTitle:        "Eliminando categoría",
		RemovingMessage:      "Se está eliminando categoría",
		RemovedTitle:         "Listo",
		RemovedMessage:       "Categoría se ha eliminado con éxito",
		RemoveFailedTitle:    "Error",
		RemoveFailedMessage:  "No se ha podido eliminar la categoría",
		ErrorCrossSite:       "Solicitud rechazada: origen no permitido",
		NotificationsRegion:  "Notificaciones",
		DashboardTitleSuffix: "Panel",
	},
	language.English: {
		CategoriesTitle:      "Categories",
		CategoriesAdd:        "Add",
		CategoriesLoading:    "Loading categories...",
		CategoriesError:      "Error",
		ColumnID:             "Id",
		ColumnName:           "Name",
		ColumnDescription:    "Description",
		ColumnActive:         "Active",
		ColumnEdit:           "Edit",
		ColumnRemove:         "Delete",
		Yes:                  "Yes",
		No:                   "No",
		Close:                "Close",
		ConfirmRemoveTitle:   "Do you want to delete %s?",
		ConfirmRemoveButton:  "Delete",
		RemovingTitle:        "Deleting category",
		RemovingMessage:      "The category is being deleted",
		RemovedTitle:         "Done",
		RemovedMessage:       "The category was deleted",
		RemoveFailedTitle:    "Error",
		RemoveFailedMessage:  "The category could not be deleted",
		ErrorCrossSite:       "Request rejected: origin not allowed",
		NotificationsRegion:  "Notifications",
		DashboardTitleSuffix: "Dashboard",
	},
}

func init() {
	for tag, messages := range catalogs {
		for key, msg := range messages {
			if err := message.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
}
