package actions

import (
	"fmt"
	"io"
	"strings"
)

var dataEscaper = strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A")

// escapeData encodes a workflow command message so that line breaks do not
// terminate the command early.
func escapeData(s string) string {
	return dataEscaper.Replace(s)
}

// SetFailed emits the ::error:: workflow command for message. The caller is
// responsible for exiting non-zero.
func SetFailed(w io.Writer, message string) error {
	_, err := fmt.Fprintf(w, "::error::%s\n", escapeData(message))
	return err
}
