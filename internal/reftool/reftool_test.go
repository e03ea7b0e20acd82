package reftool

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

type fakeRunner struct {
	out     string
	err     error
	gotName string
	gotArgs []string
}

func (f *fakeRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.gotName = name
	f.gotArgs = args
	if f.err != nil {
		return nil, f.err
	}
	return []byte(f.out), nil
}

func TestCiphers(t *testing.T) {
	run := &fakeRunner{out: "ECDHE-RSA-AES256-GCM-SHA384:AES128-SHA:RC4-SHA\n"}
	tool := NewWithRunner("/usr/bin/openssl", run, nil)

	got, err := tool.Ciphers(context.Background(), "HIGH:!aNULL")
	if err != nil {
		t.Fatalf("Ciphers: %v", err)
	}
	want := []string{"ECDHE-RSA-AES256-GCM-SHA384", "AES128-SHA", "RC4-SHA"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if run.gotName != "/usr/bin/openssl" {
		t.Errorf("ran %q", run.gotName)
	}
	if !reflect.DeepEqual(run.gotArgs, []string{"ciphers", "HIGH:!aNULL"}) {
		t.Errorf("args %v", run.gotArgs)
	}
}

func TestCiphersEmptyExpression(t *testing.T) {
	run := &fakeRunner{out: "AES128-SHA\n"}
	tool := NewWithRunner("openssl", run, nil)

	if _, err := tool.Ciphers(context.Background(), ""); err != nil {
		t.Fatalf("Ciphers: %v", err)
	}
	if !reflect.DeepEqual(run.gotArgs, []string{"ciphers"}) {
		t.Errorf("args %v, want bare ciphers", run.gotArgs)
	}
}

func TestCiphersError(t *testing.T) {
	run := &fakeRunner{err: errors.New("exit status 1")}
	tool := NewWithRunner("openssl", run, nil)

	_, err := tool.Ciphers(context.Background(), "ALL")
	if err == nil {
		t.Fatal("Ciphers should propagate the error")
	}
	if !strings.Contains(err.Error(), "openssl ciphers ALL") {
		t.Errorf("error %q should name the command", err)
	}
}

func TestAvailable(t *testing.T) {
	up := NewWithRunner("openssl", &fakeRunner{out: "AES128-SHA"}, nil)
	if !up.Available(context.Background()) {
		t.Error("Available = false for a working binary")
	}

	down := NewWithRunner("openssl", &fakeRunner{err: errors.New("not found")}, nil)
	if down.Available(context.Background()) {
		t.Error("Available = true for a broken binary")
	}
}

func TestDefaultPathApplied(t *testing.T) {
	tool := New("", nil)
	if tool.path != DefaultPath {
		t.Errorf("path %q, want %q", tool.path, DefaultPath)
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"A:B:C\n", []string{"A", "B", "C"}},
		{"A\nB\n", []string{"A", "B"}},
		{"", nil},
		{"\n", nil},
		{"  A  ", []string{"A"}},
	}
	for _, tt := range tests {
		if got := splitList(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitList(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
