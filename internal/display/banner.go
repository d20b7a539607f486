package display

import (
	"fmt"
	"io"

	"github.com/backmassage/svg2asset/internal/term"
)

const banner = `                 ____                      _
 _____   ____ _ |___ \ __ _ ___ ___  ___  | |_
/ __\ \ / / _` + "`" + ` |  __) / _` + "`" + ` / __/ __|/ _ \ | __|
\__ \\ V / (_| | / __/ (_| \__ \__ \  __/ | |_
|___/ \_/ \__, ||_____\__,_|___/___/\___|  \__|
          |___/
`

// PrintBanner prints the ASCII art banner and version to w, in magenta when
// colors are enabled.
func PrintBanner(w io.Writer, version string) {
	term.Magenta.Fprint(w, banner)
	fmt.Fprintf(w, "v%s\n\n", version)
}
