package common

const (
	defaultHomeLocation = "$LOCALAPPDATA/scriptboard"
)
