package pretty

import "fmt"

func csi(value string) string {
	return fmt.Sprintf("\x1b[%s", value)
}

func csif(form string, details ...interface{}) string {
	return csi(fmt.Sprintf(form, details...))
}
