package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"enum-registry/core/registry"

	"github.com/spf13/cobra"
)

// enumsCmd represents the enums command
var enumsCmd = &cobra.Command{
	Use:   "enums [name]",
	Short: "List enum types or the localized values of one type",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		language, _ := cmd.Flags().GetString("language")

		rt, err := newRuntime(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer rt.log.Sync()

		if len(args) == 0 {
			for _, name := range rt.registry.Names() {
				fmt.Println(name)
			}
			return nil
		}

		desc, err := rt.registry.Lookup(args[0])
		if err != nil {
			return err
		}
		if language == "" {
			language = rt.cfg.Server.Language()
		}
		printMembers(desc, language)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(enumsCmd)
	enumsCmd.Flags().StringP("language", "l", "", "Label language (defaults to server.default_language)")
}

func printMembers(desc *registry.Descriptor, language string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "VALUE\tNAME\tDESCRIPTION (%s)\n", language)
	for _, m := range desc.Members() {
		fmt.Fprintf(w, "%d\t%s\t%s\n", m.Value, m.Name, m.Label(language))
	}
	_ = w.Flush()
}
