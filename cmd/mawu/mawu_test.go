package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/signadot/mawu-format/mawu/format"
	"github.com/signadot/mawu-format/mawu/ir"

	"github.com/scott-cotton/cli"
)

func TestQueryPath(t *testing.T) {
	tests := []struct {
		args  []string
		path  string
		files []string
		err   error
	}{
		{args: []string{".a[0]", "x.json"}, path: "$.a[0]", files: []string{"x.json"}},
		{args: []string{"$..k"}, path: "$..k", files: []string{"-"}},
		{args: nil, err: cli.ErrUsage},
		{args: []string{""}, err: cli.ErrUsage},
		{args: []string{".a["}, err: cli.ErrUsage},
	}
	for _, tt := range tests {
		path, files, err := queryPath("get", tt.args)
		if tt.err != nil {
			if !errors.Is(err, tt.err) {
				t.Errorf("%v: got %v want %v", tt.args, err, tt.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%v: %v", tt.args, err)
			continue
		}
		if path != tt.path || len(files) != len(tt.files) || files[0] != tt.files[0] {
			t.Errorf("%v: got %q %v", tt.args, path, files)
		}
	}
}

func TestOutput(t *testing.T) {
	rows := ir.FromRows([][]*ir.Value{{ir.FromUint(1), ir.FromString("a")}})
	obj := ir.FromMap(map[string]*ir.Value{"k": ir.FromBool(true)})
	csvFmt := format.CSVFormat
	tests := []struct {
		cfg  *MainConfig
		v    *ir.Value
		want string
	}{
		{cfg: &MainConfig{}, v: obj, want: "{\"k\":true}\n"},
		{cfg: &MainConfig{Indent: 2}, v: obj, want: "{\n  \"k\": true\n}\n"},
		{cfg: &MainConfig{}, v: rows, want: "1,\"a\"\n"},
		{cfg: &MainConfig{J: true}, v: ir.FromSlice([]*ir.Value{ir.FromUint(1)}), want: "[1]\n"},
		{cfg: &MainConfig{OutFormat: &csvFmt}, v: rows, want: "1,\"a\"\n"},
	}
	for _, tt := range tests {
		buf := &bytes.Buffer{}
		if err := output(tt.cfg, buf, tt.v); err != nil {
			t.Errorf("%s: %v", tt.v.ToText(), err)
			continue
		}
		if buf.String() != tt.want {
			t.Errorf("got %q want %q", buf.String(), tt.want)
		}
	}
	if err := output(&MainConfig{J: true}, &bytes.Buffer{}, rows); err == nil {
		t.Error("rows written as json")
	}
}

func TestParseOpts(t *testing.T) {
	cfg := &MainConfig{}
	if n := len(cfg.parseOpts("a.csv")); n != 2 {
		t.Errorf("got %d options", n)
	}
	cfg.Depth = 3
	if n := len(cfg.parseOpts("-")); n != 3 {
		t.Errorf("got %d options", n)
	}
}
