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
	"os"

	"github.com/spf13/cobra"

	"github.com/bgallie/enigmacifra/engine"
)

// encryptCmd represents the encrypt command
var encryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypt a message",
	Long: `Encrypt a message with the rotors keyed by an 8-digit PIN.  The PIN must be
entered twice.  Messages may only contain the printable characters '!' through '}'.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		encrypt()
	},
}

func init() {
	rootCmd.AddCommand(encryptCmd)
	encryptCmd.Flags().BoolVarP(&useASCII85, "useASCII85", "a", false, "use ASCII85 encoding")
	encryptCmd.Flags().BoolVarP(&usePem, "usePem", "p", false, "use PEM encoding.")
	encryptCmd.Flags().BoolVarP(&compression, "compress", "c", false, "compress the ciphertext using flate (requires -a or -p)")
}

func encrypt() {
	if compression && !(useASCII85 || usePem) {
		cobra.CheckErr("compression requires --useASCII85 or --usePem")
	}
	table := loadTable()
	pin, err := obtainPIN(true, "encrypt")
	cobra.CheckErr(err)
	var machine engine.EnigmaEngine
	cobra.CheckErr(machine.Init(pin, baseStack(table)))
	fin := getInputFile()
	defer fin.Close()

	var msgs []string
	if interactive() {
		fmt.Fprint(os.Stderr, "Enter the message to be encrypted: ")
		line, err := readLine(bufio.NewReader(fin))
		cobra.CheckErr(err)
		msgs = []string{line}
	} else {
		msgs, err = readMessages(fin)
		cobra.CheckErr(err)
	}

	a := armor{ascii85: useASCII85, pem: usePem, compress: compression}
	if interactive() && toStdout() && !(a.ascii85 || a.pem) {
		encrypted, err := machine.Encrypt(msgs[0])
		cobra.CheckErr(err)
		fmt.Println("Your encrypted message is:", encrypted)
		return
	}
	cobra.CheckErr(encryptTo(msgs, machine.Encrypt, table, a, openOutputFile))
}
