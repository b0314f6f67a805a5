package cli

import (
	"fmt"
	"io"

	"github.com/dmitrijs2005/neontetris/internal/client/client"
)

func (a *App) fprintTable(w io.Writer, top []client.Entry) {
	fmt.Fprintln(w, "#\tPLAYER\tSCORE")
	for i, e := range top {
		fmt.Fprintf(w, "%d\t%s\t%d\n", i+1, e.UserName, e.HighScore)
	}
}
