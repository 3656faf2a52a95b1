package wizard

const (
	ExecutePrompt  = "Execute? (1=Yes/0=No): "
	ContinuePrompt = "Press Enter to continue..."
	yesAnswer      = "1"
)

// ConfirmExecute asks whether to launch a script. Only an explicit "1"
// counts as yes; every other answer declines.
func (it *Menu) ConfirmExecute() (bool, error) {
	reply, err := it.Ask(ExecutePrompt)
	if err != nil {
		return false, err
	}
	return reply == yesAnswer, nil
}
