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
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bgallie/enigmacifra/cryptors/stack"
	"github.com/bgallie/enigmacifra/rotorfile"
)

var (
	cfgFile        string
	inputFileName  string
	outputFileName string
	GitCommit      string = "not set"
	GitBranch      string = "not set"
	GitState       string = "not set"
	GitSummary     string = "not set"
	BuildDate      string = "not set"
	Version        string = "dev"
)

const (
	enigmaApiLevel = 1
	configName     = ".enigmacifra"
	rotorStoreDir  = ".enigmacifra"
	rotorStoreName = "rotors.yaml"
	backupDirName  = ".enigmabackup"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "enigmacifra",
	Short: "A PIN keyed Enigma-like cipher",
	Long: `enigmacifra encrypts and decrypts messages by passing every character through
a stack of eight rotors.  The rotors are keyed with an 8-digit PIN and turn after
each character, so repeated letters do not repeat in the ciphertext.`,
	Version: Version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.SetVersionTemplate(fmt.Sprintf("Enigma CLI Version: {{.Version}}\nGit: %s %s (%s, %s)\nBuilt: %s\n",
		GitSummary, GitCommit, GitBranch, GitState, BuildDate))
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.enigmacifra.yaml)")
	rootCmd.PersistentFlags().StringP("rotorfile", "r", "", "the rotor store to use (default is $HOME/.enigmacifra/rotors.yaml)")
	rootCmd.PersistentFlags().String("backupdir", "", "directory receiving rotor store backups (default is $HOME/.enigmabackup)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVarP(&inputFileName, "inputFile", "i", "-", "Name of the file containing the messages to encrypt/decrypt.")
	rootCmd.PersistentFlags().StringVarP(&outputFileName, "outputFile", "o", "", "Name of the file receiving the encrypted/decrypted messages.")
	cobra.CheckErr(viper.BindPFlag("rotorfile", rootCmd.PersistentFlags().Lookup("rotorfile")))
	cobra.CheckErr(viper.BindPFlag("backupdir", rootCmd.PersistentFlags().Lookup("backupdir")))
	cobra.CheckErr(viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level")))
}

// initConfig reads in .env, the config file and ENV variables if set.
func initConfig() {
	// A missing .env is normal.
	_ = godotenv.Load()

	home, err := os.UserHomeDir()
	cobra.CheckErr(err)
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search config in home directory with name ".enigmacifra" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(configName)
	}
	viper.SetDefault("rotorfile", filepath.Join(home, rotorStoreDir, rotorStoreName))
	viper.SetDefault("backupdir", filepath.Join(home, backupDirName))

	// ENIGMA_PIN, ENIGMA_ROTORFILE, ENIGMA_BACKUPDIR, ENIGMA_LOG_LEVEL
	viper.SetEnvPrefix("enigma")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	configErr := viper.ReadInConfig()
	setupLogger(viper.GetString("log-level"))
	if configErr == nil {
		slog.Info("using config file", "file", viper.ConfigFileUsed())
	}
}

func setupLogger(level string) {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelWarn
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))
}

// loadTable returns the rotor table from the rotor store, or the built-in
// table when no store has been created yet.
func loadTable() *rotorfile.Table {
	path := viper.GetString("rotorfile")
	table, err := rotorfile.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("no rotor store, using the built-in rotor table", "store", path)
		return rotorfile.Default()
	}
	cobra.CheckErr(err)
	slog.Debug("rotor table loaded", "store", path, "id", table.ID)
	return table
}

func baseStack(table *rotorfile.Table) *stack.Stack {
	base, err := table.Stack()
	cobra.CheckErr(err)
	return base
}

/*
	getInputFile will return the file messages are read from.  If an input file
	name was given, then that file will be opened.  Otherwise stdin is used.
*/
func getInputFile() *os.File {
	if len(inputFileName) > 0 && inputFileName != "-" {
		fin, err := os.Open(inputFileName)
		cobra.CheckErr(err)
		return fin
	}
	return os.Stdin
}

// toStdout reports whether no output file was named.
func toStdout() bool {
	return len(outputFileName) == 0 || outputFileName == "-"
}

// openOutputFile creates (or truncates) the named output file, or returns
// stdout.
func openOutputFile() (io.WriteCloser, error) {
	if toStdout() {
		return os.Stdout, nil
	}
	return os.Create(outputFileName)
}
