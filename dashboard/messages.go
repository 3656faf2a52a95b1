package dashboard

const (
	mainTitle   = "Main Menu - Dashboard"
	unitTitle   = "Unit: %s"
	scriptTitle = "Scripts in %s"

	exitOption = "0 - Exit"
	backOption = "0 - Back"
	backChoice = "0"

	msgExiting      = "Exiting the program."
	msgNoUnits      = "No units found."
	msgNoSubfolders = "No subfolders in this unit."
	msgNoScripts    = "No scripts in this folder."
	msgInvalid      = "Invalid option."
	msgCodeHeader   = "--- Code of %s ---"
	msgNotFound     = "File not found."
	msgDecode       = "Encoding error while reading the file."
	msgReadFailed   = "Error reading the file: %v"
	msgLaunchFailed = "Error running the script: %v"
	msgListFailed   = "Could not list %s: %v"
	msgViewFailed   = "Could not show %q: %v"
)
