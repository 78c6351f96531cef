// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// keyfiledump inspects one or two keyfiles and shows what the codec
// normalizes.
//
// Usage:
//
//	go run ./cmd/keyfiledump a.keyfile
//	go run ./cmd/keyfiledump a.keyfile b.keyfile
//	go run ./cmd/keyfiledump --hcl a.keyfile
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pmezard/go-difflib/difflib"

	"grimm.is/connprofile/internal/export"
	"grimm.is/connprofile/internal/inistore"
	"grimm.is/connprofile/internal/keyfile"
	"grimm.is/connprofile/internal/profile"
)

func main() {
	hcl := flag.Bool("hcl", false, "also print the HCL rendering of the decoded connection")
	flag.Parse()

	args := flag.Args()
	switch len(args) {
	case 1:
		if err := dumpOne(args[0], *hcl); err != nil {
			fmt.Fprintf(os.Stderr, "keyfiledump: %v\n", err)
			os.Exit(1)
		}
	case 2:
		if err := dumpDiff(args[0], args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "keyfiledump: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "usage: keyfiledump [--hcl] <keyfile> [<keyfile2>]")
		os.Exit(2)
	}
}

func loadKeyfile(path string) (*profile.Connection, *inistore.Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	store, err := inistore.Parse(string(raw))
	if err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	handler := func(w keyfile.Warning, _ *profile.Connection, _ *inistore.Store) bool {
		fmt.Fprintln(os.Stderr, w.String())
		return true
	}
	conn, err := keyfile.Read(store, keyfile.Options{KeyfileName: path, Handler: handler})
	if err != nil {
		return nil, nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return conn, store, nil
}

func canonicalText(conn *profile.Connection, keyfileName string) (string, error) {
	out, err := keyfile.Write(conn, nil, keyfile.Options{KeyfileName: keyfileName})
	if err != nil {
		return "", fmt.Errorf("re-serializing: %w", err)
	}
	return out.String(), nil
}

func dumpOne(path string, withHCL bool) error {
	log.Printf("[KEYFILEDUMP] reading %s", path)
	conn, _, err := loadKeyfile(path)
	if err != nil {
		return err
	}

	original, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	canonical, err := canonicalText(conn, path)
	if err != nil {
		return err
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(original)),
		B:        difflib.SplitLines(canonical),
		FromFile: path,
		ToFile:   path + " (canonical)",
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return fmt.Errorf("building diff: %w", err)
	}
	if text == "" {
		fmt.Println("no normalization: file is already canonical")
	} else {
		fmt.Print(text)
	}

	if withHCL {
		fmt.Println("--- hcl ---")
		if err := export.WriteHCL(os.Stdout, conn); err != nil {
			return fmt.Errorf("rendering HCL: %w", err)
		}
		fmt.Println()
	}
	return nil
}

func dumpDiff(pathA, pathB string) error {
	log.Printf("[KEYFILEDUMP] comparing %s and %s", pathA, pathB)
	connA, _, err := loadKeyfile(pathA)
	if err != nil {
		return err
	}
	connB, _, err := loadKeyfile(pathB)
	if err != nil {
		return err
	}

	canonicalA, err := canonicalText(connA, pathA)
	if err != nil {
		return err
	}
	canonicalB, err := canonicalText(connB, pathB)
	if err != nil {
		return err
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(canonicalA),
		B:        difflib.SplitLines(canonicalB),
		FromFile: pathA,
		ToFile:   pathB,
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return fmt.Errorf("building diff: %w", err)
	}
	if text == "" {
		fmt.Println("identical canonical form")
	} else {
		fmt.Print(text)
	}
	return nil
}
