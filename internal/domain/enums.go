package domain

type SaveStatus string

const (
	StatusSaved    SaveStatus = "Saved"
	StatusNotSaved SaveStatus = "Not Saved"
)

type Permission string

const (
	PermissionFull Permission = "full"
	PermissionRead Permission = "read"
)

// ValidPermissions is the canonical set of accepted permission strings.
var ValidPermissions = map[string]bool{
	"full": true, "read": true,
}

type EntryKind string

const (
	KindTodo     EntryKind = "todo"
	KindNote     EntryKind = "note"
	KindSchedule EntryKind = "schedule"
)

// Feature identifies which view renders a menu item's content.
type Feature string

const (
	FeatureDashboard Feature = "dashboard"
	FeatureTodo      Feature = "todo"
	FeatureNotes     Feature = "notes"
	FeatureSchedule  Feature = "schedule"
	FeatureGeneric   Feature = "generic"
)

// Well-known menu item ids and section titles from the bundled document.
const (
	IndexItemID           = "index"
	ProTodoItemID         = "pro-todo"
	PerTodoItemID         = "per-todo"
	NotesItemID           = "annotations"
	ScheduleItemID        = "schedule"
	AgendaSection         = "MY AGENDA"
	DefaultBackupFileName = "PlannerHub"
)
