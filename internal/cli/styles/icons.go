package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "" // tag
	IconGitBranch = "" // git branch
	IconCalendar  = "" // calendar
	IconGithub    = "" // github
	IconGo        = "" // go gopher

	IconCheck  = "" // check
	IconX      = "" // x
	IconInfo   = "" // info
	IconConfig = "" // config
	IconFolder = "" // folder
	IconTrash  = "" // trash
	IconCursor = "" // chevron-right

	IconPane    = "" // columns
	IconSwap    = "" // exchange
	IconSession = "" // window

	IconCheckboxEmpty   = "" // unchecked
	IconCheckboxChecked = "" // checked
)
