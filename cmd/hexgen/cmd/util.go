package cmd

import (
	"bytes"
	"fmt"
	"github.com/kurumiimari/hexbytes"
	"github.com/pkg/errors"
	"go/format"
	"go/token"
	"strings"
)

type decl struct {
	Name  string
	Hex   string
	Bytes []byte
}

func parseDecls(args []string) ([]decl, error) {
	decls := make([]decl, 0, len(args))
	seen := make(map[string]bool)
	for _, arg := range args {
		parts := strings.SplitN(arg, "=", 2)
		if len(parts) != 2 {
			return nil, errors.Errorf("expected NAME=HEXLITERAL, got %q", arg)
		}

		name, lit := parts[0], parts[1]
		if !token.IsIdentifier(name) {
			return nil, errors.Errorf("%q is not a valid Go identifier", name)
		}
		if seen[name] {
			return nil, errors.Errorf("duplicate declaration name %q", name)
		}
		seen[name] = true

		buf := make([]byte, len(lit)/2)
		if err := hexbytes.DecodeInto(buf, lit); err != nil {
			return nil, errors.Wrapf(err, "invalid hex literal %q", lit)
		}

		genLogger.Debug("parsed declaration", "name", name, "bytes", len(buf))
		decls = append(decls, decl{
			Name:  name,
			Hex:   lit,
			Bytes: buf,
		})
	}
	return decls, nil
}

func render(pkg string, decls []decl) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by hexgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	for _, d := range decls {
		fmt.Fprintf(&buf, "// %s holds the bytes of %q.\n", d.Name, d.Hex)
		fmt.Fprintf(&buf, "var %s = [%d]byte{", d.Name, len(d.Bytes))
		for i, b := range d.Bytes {
			if i > 0 {
				buf.WriteString(", ")
			}
			fmt.Fprintf(&buf, "0x%02x", b)
		}
		buf.WriteString("}\n\n")
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrap(err, "error formatting generated source")
	}
	return src, nil
}
