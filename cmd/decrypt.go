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
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bgallie/enigmacifra/engine"
)

// decryptCmd represents the decrypt command
var decryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Decrypt a message",
	Long:  `Decrypt a message encrypted by enigmacifra using the same 8-digit PIN and rotor table.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		decrypt()
	},
}

func init() {
	rootCmd.AddCommand(decryptCmd)
	decryptCmd.Flags().BoolVarP(&useASCII85, "useASCII85", "a", false, "the input is ASCII85 encoded")
	decryptCmd.Flags().BoolVarP(&compression, "compress", "c", false, "the input was compressed using flate")
}

func decrypt() {
	table := loadTable()
	pin, err := obtainPIN(false, "decrypt")
	cobra.CheckErr(err)
	var machine engine.EnigmaEngine
	cobra.CheckErr(machine.Init(pin, baseStack(table)))
	fin := getInputFile()
	defer fin.Close()
	bRdr := bufio.NewReader(fin)

	if interactive() {
		fmt.Fprint(os.Stderr, "Enter the encrypted message: ")
		line, err := readLine(bRdr)
		cobra.CheckErr(err)
		plaintext, err := machine.Decrypt(line)
		cobra.CheckErr(err)
		if toStdout() {
			fmt.Println("Your decrypted message:", plaintext)
			return
		}
		cobra.CheckErr(writeOutput(openOutputFile, func(w io.Writer) error {
			_, err := io.WriteString(w, plaintext+"\n")
			return err
		}))
		return
	}

	err = decryptTo(bRdr, machine.Decrypt, table, armor{ascii85: useASCII85, compress: compression}, openOutputFile)
	var mismatch *mismatchError
	if errors.As(err, &mismatch) {
		fmt.Fprintf(os.Stderr, "Error: %s\n", mismatch)
		os.Exit(100)
	}
	cobra.CheckErr(err)
}
