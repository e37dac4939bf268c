package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// passthroughArgs splits args for commands that parse their own flags
// (DisableFlagParsing). Only arguments naming a declared flag are applied as
// flags; any other dash-leading argument, such as "-1" or "--no-cache", is
// kept as a positional value. Everything after "--" is positional.
func passthroughArgs(cmd *cobra.Command, args []string) ([]string, error) {
	var positional []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return append(positional, args[i+1:]...), nil

		case strings.HasPrefix(arg, "--") && len(arg) > 2:
			name, value, hasValue := strings.Cut(arg[2:], "=")
			f := lookupFlag(cmd, name)
			if f == nil {
				positional = append(positional, arg)
				continue
			}
			if !hasValue {
				switch {
				case f.NoOptDefVal != "":
					value = f.NoOptDefVal
				case i+1 < len(args):
					i++
					value = args[i]
				default:
					return nil, fmt.Errorf("flag needs an argument: --%s", name)
				}
			}
			if err := setFlag(f, value); err != nil {
				return nil, err
			}

		case strings.HasPrefix(arg, "-") && len(arg) > 1 && allShorthands(cmd, arg[1:]):
			for j := 1; j < len(arg); j++ {
				f := lookupShorthand(cmd, arg[j:j+1])
				if err := setFlag(f, f.NoOptDefVal); err != nil {
					return nil, err
				}
			}

		default:
			positional = append(positional, arg)
		}
	}

	if help, _ := cmd.Flags().GetBool("help"); help {
		return nil, pflag.ErrHelp
	}
	return positional, nil
}

// exactPassthroughArgs is exactArgs applied to the positionals left by
// passthroughArgs.
func exactPassthroughArgs(n int) cobra.PositionalArgs {
	check := exactArgs(n)
	return func(cmd *cobra.Command, args []string) error {
		positional, err := passthroughArgs(cmd, args)
		if err != nil {
			return err
		}
		return check(cmd, positional)
	}
}

func lookupFlag(cmd *cobra.Command, name string) *pflag.Flag {
	if f := cmd.Flags().Lookup(name); f != nil {
		return f
	}
	return cmd.InheritedFlags().Lookup(name)
}

func lookupShorthand(cmd *cobra.Command, s string) *pflag.Flag {
	if f := cmd.Flags().ShorthandLookup(s); f != nil {
		return f
	}
	return cmd.InheritedFlags().ShorthandLookup(s)
}

// allShorthands reports whether every character of s is the shorthand of a
// boolean flag, so "-fi" is two flags while "-1" or "-x" stay values.
func allShorthands(cmd *cobra.Command, s string) bool {
	for i := 0; i < len(s); i++ {
		f := lookupShorthand(cmd, s[i:i+1])
		if f == nil || f.NoOptDefVal == "" {
			return false
		}
	}
	return true
}

func setFlag(f *pflag.Flag, value string) error {
	if err := f.Value.Set(value); err != nil {
		return fmt.Errorf("invalid argument %q for --%s: %w", value, f.Name, err)
	}
	f.Changed = true
	return nil
}
