package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kastheco/navrail/config"
	"github.com/kastheco/navrail/nav"
	"github.com/spf13/cobra"
)

// prefNames maps the command-line names to the stored keys.
var prefNames = []struct {
	name string
	key  string
}{
	{"collapsed", nav.PrefCollapsed},
	{"show-more", nav.PrefShowMore},
}

func prefKey(name string) (string, error) {
	for _, p := range prefNames {
		if p.name == name {
			return p.key, nil
		}
	}
	return "", fmt.Errorf("unknown preference %q (want collapsed or show-more)", name)
}

// executePrefsGet lists both sidebar preferences. A stored value the sidebar
// would ignore is shown with a note.
func executePrefsGet(store nav.Preferences) string {
	var sb strings.Builder
	for _, p := range prefNames {
		v, ok := store.Get(p.key)
		switch {
		case !ok:
			v = "(unset)"
		case v != "true" && v != "false":
			v = fmt.Sprintf("%q (ignored)", v)
		}
		fmt.Fprintf(&sb, "%-10s %s\n", p.name, v)
	}
	return sb.String()
}

// executePrefsSet stores one preference. value accepts anything
// strconv.ParseBool does and is written as "true" or "false".
func executePrefsSet(store nav.Preferences, name, value string) error {
	key, err := prefKey(name)
	if err != nil {
		return err
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid value %q for %s: want true or false", value, name)
	}
	store.Set(key, strconv.FormatBool(b))
	return nil
}

// NewPrefsCmd builds the `navrail prefs` command tree.
func NewPrefsCmd() *cobra.Command {
	prefsCmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change the stored sidebar preferences",
	}

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Print the stored preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := config.OpenPreferenceStore(config.LoadConfig())
			if err != nil {
				return err
			}
			defer store.Close()
			fmt.Fprint(cmd.OutOrStdout(), executePrefsGet(store))
			return nil
		},
	}

	setCmd := &cobra.Command{
		Use:   "set <collapsed|show-more> <true|false>",
		Short: "Store a preference",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := config.OpenPreferenceStore(config.LoadConfig())
			if err != nil {
				return err
			}
			defer store.Close()
			if err := executePrefsSet(store, args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), executePrefsGet(store))
			return nil
		},
	}

	prefsCmd.AddCommand(getCmd, setCmd)
	return prefsCmd
}
