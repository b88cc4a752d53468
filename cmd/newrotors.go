/*
Copyright © 2024 Billy G. Allie <bill.allie@defiant.mug.org>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bgallie/enigmacifra/cryptors"
	"github.com/bgallie/enigmacifra/cryptors/rotor"
	"github.com/bgallie/enigmacifra/rotorfile"
)

const (
	redStart = "\033[91m"
	redEnd   = "\033[0m"
)

// getNewRotorsCmd represents the get-new-rotors command
var getNewRotorsCmd = &cobra.Command{
	Use:   "get-new-rotors",
	Short: "Shuffle and create new rotors",
	Long: `Replace the rotor store with freshly shuffled rotors.  The current store is
backed up first.  Messages encrypted with the old rotors can only be decrypted
with a copy of the old store.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return getNewRotors(cmd.InOrStdin(), cmd.OutOrStdout(),
			viper.GetString("rotorfile"), viper.GetString("backupdir"), nil, time.Now())
	},
}

func init() {
	rootCmd.AddCommand(getNewRotorsCmd)
}

// getNewRotors asks twice before replacing the rotor store.  Any answer
// other than "y" and then "yes" leaves everything as it was.
func getNewRotors(in io.Reader, out io.Writer, store, backupDir string, s rotor.Shuffler, now time.Time) error {
	rdr := bufio.NewReader(in)
	fmt.Fprint(out, redStart+
		"WARNING: Proceeding will overwrite existing rotor configurations. "+
		"This will make previously encrypted data undecipherable unless you "+
		"have a backup of the current rotors.\nAre you sure you want to continue? [Y/N]: "+
		redEnd)
	if answer, _ := readLine(rdr); !strings.EqualFold(strings.TrimSpace(answer), "y") {
		fmt.Fprintln(out, "Operation cancelled.")
		return nil
	}
	fmt.Fprint(out, "Please type 'yes' to confirm: ")
	if answer, _ := readLine(rdr); !strings.EqualFold(strings.TrimSpace(answer), "yes") {
		fmt.Fprintln(out, "Operation cancelled.")
		return nil
	}

	_, backupPath, err := rotorfile.Regenerate(store, backupDir, cryptors.NumberOfRotors, s, now)
	if err != nil {
		return err
	}
	if backupPath != "" {
		fmt.Fprintf(out, "Backup of %s saved as: %s\n", filepath.Base(store), backupPath)
	}
	fmt.Fprintf(out, "New rotors created and saved in: %s\n", store)
	return nil
}
