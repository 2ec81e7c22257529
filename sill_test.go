package sill_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/sill"
	"github.com/aretw0/sill/pkg/schema"
	"github.com/aretw0/sill/pkg/source"
)

func demoSchema() *schema.Schema {
	return schema.New().
		Add("HOST", schema.String().Required()).
		Add("PORT", schema.Number().Default(3000)).
		Add("DEBUG", schema.Bool().Default(false))
}

func TestValidate_WithSource(t *testing.T) {
	res, err := sill.Validate(demoSchema(), sill.WithSource(source.Map{
		"HOST": "localhost",
		"PORT": "8080",
	}))
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	if res.String("HOST") != "localhost" {
		t.Errorf("HOST = %q, want localhost", res.String("HOST"))
	}
	if res.Number("PORT") != 8080 {
		t.Errorf("PORT = %v, want 8080", res.Number("PORT"))
	}
	if res.Bool("DEBUG") != false {
		t.Errorf("DEBUG = %v, want default false", res.Bool("DEBUG"))
	}
}

func TestValidate_DefaultSourceIsProcessEnvironment(t *testing.T) {
	t.Setenv("SILL_FACADE_TEST", "from-env")

	s := schema.New().Add("SILL_FACADE_TEST", schema.String().Required())
	res, err := sill.Validate(s)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if res.String("SILL_FACADE_TEST") != "from-env" {
		t.Errorf("SILL_FACADE_TEST = %q, want from-env", res.String("SILL_FACADE_TEST"))
	}
}

func TestValidate_AggregatesFailures(t *testing.T) {
	_, err := sill.Validate(demoSchema(), sill.WithSource(source.Map{
		"PORT": "not-a-number",
	}))
	if err == nil {
		t.Fatal("Validate should fail")
	}

	var aggr *schema.AggregateError
	if !errors.As(err, &aggr) {
		t.Fatalf("error should be *schema.AggregateError, got %T", err)
	}
	want := []string{
		"HOST: Required value is missing",
		"PORT: Invalid number",
	}
	got := aggr.Messages()
	if len(got) != len(want) {
		t.Fatalf("Messages() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Messages()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMustValidate_PanicsWithAggregate(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustValidate should panic on failure")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value should be an error, got %T", r)
		}
		if !strings.Contains(err.Error(), "Environment validation failed") {
			t.Errorf("panic message = %q, want the aggregate summary", err.Error())
		}
	}()

	sill.MustValidate(demoSchema(), sill.WithSource(source.Map{}))
}

func TestCheck_Report(t *testing.T) {
	rep := sill.Check(demoSchema(), sill.WithSource(source.Map{"PORT": "x"}))

	if rep.OK() {
		t.Fatal("Check should report failures")
	}
	if len(rep.Missing) != 1 || rep.Missing[0] != "HOST" {
		t.Errorf("Missing = %v, want [HOST]", rep.Missing)
	}
	if len(rep.Invalid) != 1 || rep.Invalid[0].Field != "PORT" {
		t.Errorf("Invalid = %v, want PORT", rep.Invalid)
	}
}

func TestDecode(t *testing.T) {
	res, err := sill.Validate(demoSchema(), sill.WithSource(source.Map{
		"HOST":  "localhost",
		"DEBUG": "true",
	}))
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	var cfg struct {
		Host  string  `env:"HOST"`
		Port  int     `env:"PORT"`
		Debug bool    `env:"DEBUG"`
		Rate  float64 `env:"RATE"`
	}
	if err := sill.Decode(res, &cfg); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if cfg.Host != "localhost" {
		t.Errorf("Host = %q, want localhost", cfg.Host)
	}
	if cfg.Port != 3000 {
		t.Errorf("Port = %d, want the 3000 default", cfg.Port)
	}
	if cfg.Debug != true {
		t.Errorf("Debug = %v, want true", cfg.Debug)
	}
	if cfg.Rate != 0 {
		t.Errorf("Rate = %v, want zero for a field outside the schema", cfg.Rate)
	}
}

func TestDecode_AbsentOptionalLeavesZeroValue(t *testing.T) {
	s := schema.New().Add("OPT", schema.String())
	res, err := sill.Validate(s, sill.WithSource(source.Map{}))
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	cfg := struct {
		Opt string `env:"OPT"`
	}{Opt: "untouched"}
	if err := sill.Decode(res, &cfg); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if cfg.Opt != "untouched" {
		t.Errorf("Opt = %q, want untouched for a nil entry", cfg.Opt)
	}
}
