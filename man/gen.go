//go:build ignore

// Command gen renders pacfind(1) man page from command tree:
//
//	go run man/gen.go
package main

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"text/template"

	"github.com/pacfind/pacfind/cmd"
	"github.com/smira/commander"
	"github.com/smira/flag"
)

func allFlags(flags *flag.FlagSet) []*flag.Flag {
	result := []*flag.Flag{}
	flags.VisitAll(func(f *flag.Flag) {
		result = append(result, f)
	})
	return result
}

func findCommand(cmd *commander.Command, name string) (*commander.Command, error) {
	for _, c := range cmd.Subcommands {
		if c.Name() == name {
			return c, nil
		}
	}

	return nil, fmt.Errorf("command %s not found", name)
}

// capitalize quotes literal words of usage line, placeholders stay as is
func capitalize(s string) string {
	parts := strings.Split(s, " ")
	for i, part := range parts {
		if part == "" || part == "--" {
			continue
		}
		if part[0] != '<' && part[0] != '[' && part[len(part)-1] != '>' && part[len(part)-1] != ']' {
			parts[i] = "`" + part + "`"
		}
	}

	return strings.Join(parts, " ")
}

// fullName builds command path like "pacfind db cleanup"
func fullName(cmd *commander.Command) string {
	names := []string{}
	for c := cmd; c != nil; c = c.Parent {
		names = append([]string{c.Name()}, names...)
	}
	return strings.Join(names, " ")
}

// usageArgs strips command name from usage line
func usageArgs(cmd *commander.Command) string {
	parts := strings.SplitN(cmd.UsageLine, " ", 2)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

func main() {
	command := cmd.RootCommand()
	command.UsageLine = "pacfind"
	_ = command.Dispatch(nil)

	_, file, _, _ := runtime.Caller(0)
	dir := filepath.Dir(file)

	templ := template.New("man").Funcs(template.FuncMap{
		"allFlags":    allFlags,
		"findCommand": findCommand,
		"toUpper":     strings.ToUpper,
		"capitalize":  capitalize,
		"fullName":    fullName,
		"usageArgs":   usageArgs,
	})
	template.Must(templ.ParseFiles(filepath.Join(dir, "pacfind.1.ronn.tmpl")))

	output, err := os.Create(filepath.Join(dir, "pacfind.1.ronn"))
	if err != nil {
		log.Fatal(err)
	}

	err = templ.ExecuteTemplate(output, "main", command)
	if err != nil {
		log.Fatal(err)
	}

	output.Close()

	out, err := exec.Command("ronn", "--roff", filepath.Join(dir, "pacfind.1.ronn")).CombinedOutput()
	if err != nil {
		os.Stdout.Write(out)
		log.Fatal(err)
	}
}
