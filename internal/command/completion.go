// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/awsctl/internal/meta"
	"github.com/tfctl/awsctl/internal/output"
)

const bashHeader = `# bash completion for awsctl
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_awsctl()
{
    local cur prev
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "%s --help --version" -- "$cur") )
        return 0
    fi

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "%s" -- "$cur") )
        return 0
    fi

    local opts=""
    case "${COMP_WORDS[1]}" in
`

const bashFooter = `    esac

    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
}

complete -F _awsctl awsctl
`

const zshHeader = `#compdef awsctl

_awsctl() {
  local -a cmds
  cmds=(
%s  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'awsctl commands' cmds
    return
  fi

  local -a ops
  case $words[2] in
`

const zshFooter = `  esac

  if (( CURRENT == 3 )); then
    _describe -t operations 'operations' ops
    return
  fi
  _arguments '*:flags:($flags)'
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _awsctl awsctl
`

// writeBash writes a bash completion script for the services under root.
func writeBash(w io.Writer, root *cli.Command) {
	fmt.Fprintf(w, bashHeader, strings.Join(names(root.Commands), " "), strings.Join(output.Formats, " "))

	for _, svc := range root.Commands {
		if svc.Name == "completion" {
			fmt.Fprintf(w, "    completion)\n        opts=\"bash zsh\"\n        ;;\n")
			continue
		}

		fmt.Fprintf(w, "    %s)\n", strings.Join(append([]string{svc.Name}, svc.Aliases...), "|"))
		fmt.Fprintf(w, "        if [[ ${COMP_CWORD} -eq 2 ]]; then\n")
		fmt.Fprintf(w, "            opts=%q\n", strings.Join(names(svc.Commands), " "))
		fmt.Fprintf(w, "        else\n")
		fmt.Fprintf(w, "            case \"${COMP_WORDS[2]}\" in\n")
		for _, op := range svc.Commands {
			fmt.Fprintf(w, "            %s) opts=%q ;;\n", op.Name, strings.Join(flagWords(op), " "))
		}
		fmt.Fprintf(w, "            esac\n")
		fmt.Fprintf(w, "        fi\n")
		fmt.Fprintf(w, "        ;;\n")
	}

	fmt.Fprint(w, bashFooter)
}

// writeZsh writes a zsh completion script for the services under root.
func writeZsh(w io.Writer, root *cli.Command) {
	var cmds strings.Builder
	for _, svc := range root.Commands {
		fmt.Fprintf(&cmds, "    '%s:%s'\n", svc.Name, zshQuote(svc.Usage))
	}
	fmt.Fprintf(w, zshHeader, cmds.String())

	for _, svc := range root.Commands {
		if svc.Name == "completion" {
			fmt.Fprintf(w, "    completion)\n      _arguments '1: :((bash zsh))'\n      return\n      ;;\n")
			continue
		}

		fmt.Fprintf(w, "    %s)\n", strings.Join(append([]string{svc.Name}, svc.Aliases...), "|"))
		fmt.Fprintf(w, "      ops=(\n")
		for _, op := range svc.Commands {
			fmt.Fprintf(w, "        '%s:%s'\n", op.Name, zshQuote(op.Usage))
		}
		fmt.Fprintf(w, "      )\n")
		fmt.Fprintf(w, "      case $words[3] in\n")
		for _, op := range svc.Commands {
			fmt.Fprintf(w, "        %s) local -a flags; flags=(%s) ;;\n", op.Name, strings.Join(flagWords(op), " "))
		}
		fmt.Fprintf(w, "      esac\n")
		fmt.Fprintf(w, "      ;;\n")
	}

	fmt.Fprint(w, zshFooter)
}

func names(cmds []*cli.Command) []string {
	out := make([]string, 0, len(cmds))
	for _, c := range cmds {
		out = append(out, c.Name)
	}
	return out
}

// flagWords returns every --long and -s spelling of cmd's flags.
func flagWords(cmd *cli.Command) []string {
	var out []string
	for _, f := range cmd.Flags {
		for _, n := range f.Names() {
			if len(n) == 1 {
				out = append(out, "-"+n)
			} else {
				out = append(out, "--"+n)
			}
		}
	}
	return out
}

func zshQuote(s string) string {
	return strings.NewReplacer("'", "", ":", `\:`).Replace(s)
}

func completionCommandAction(_ context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	root := cmd.Root()

	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	if shell == "" {
		// Try to detect from SHELL.
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		}
	}

	switch shell {
	case "bash":
		writeBash(m.Out(), root)
	case "zsh":
		writeZsh(m.Out(), root)
	default:
		fmt.Fprintln(m.ErrOut(), "usage: awsctl completion [bash|zsh]")
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "awsctl completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
