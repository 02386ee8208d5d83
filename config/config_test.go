package config

import (
	"errors"
	"os"
	"reflect"
	"testing"
	"time"
)

type TestConfig struct {
	StringField   string        `env:"TEST_STRING"`
	IntField      int           `env:"TEST_INT"`
	Int64Field    int64         `env:"TEST_INT64"`
	BoolField     bool          `env:"TEST_BOOL"`
	DurationField time.Duration `env:"TEST_DURATION,default:30s"`
	ListField     []string      `env:"TEST_LIST"`
	DefaultField  string        `env:"TEST_DEFAULT,default:defaultValue"`
	NoTagField    string
}

var testEnvNames = []string{
	"TEST_STRING", "TEST_INT", "TEST_INT64", "TEST_BOOL",
	"TEST_DURATION", "TEST_LIST", "TEST_DEFAULT",
}

func clearTestEnv() {
	for _, name := range testEnvNames {
		os.Unsetenv(name)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected TestConfig
		wantErr  bool
	}{
		{
			name: "all fields set from environment",
			envVars: map[string]string{
				"TEST_STRING":   "hello",
				"TEST_INT":      "42",
				"TEST_INT64":    "9223372036854775807",
				"TEST_BOOL":     "true",
				"TEST_DURATION": "2m",
				"TEST_LIST":     "images/*, videos/*,,",
			},
			expected: TestConfig{
				StringField:   "hello",
				IntField:      42,
				Int64Field:    9223372036854775807,
				BoolField:     true,
				DurationField: 2 * time.Minute,
				ListField:     []string{"images/*", "videos/*"},
				DefaultField:  "defaultValue",
			},
		},
		{
			name: "override default value",
			envVars: map[string]string{
				"TEST_DEFAULT": "overridden",
			},
			expected: TestConfig{
				DurationField: 30 * time.Second,
				DefaultField:  "overridden",
			},
		},
		{
			name: "invalid int value",
			envVars: map[string]string{
				"TEST_INT": "not-a-number",
			},
			wantErr: true,
		},
		{
			name: "invalid bool value",
			envVars: map[string]string{
				"TEST_BOOL": "not-a-bool",
			},
			wantErr: true,
		},
		{
			name: "invalid duration value",
			envVars: map[string]string{
				"TEST_DURATION": "soon",
			},
			wantErr: true,
		},
		{
			name:    "empty environment leaves zero values",
			envVars: map[string]string{},
			expected: TestConfig{
				DurationField: 30 * time.Second,
				DefaultField:  "defaultValue",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearTestEnv()
			defer clearTestEnv()

			for k, v := range tt.envVars {
				os.Setenv(k, v)
			}

			cfg := &TestConfig{}
			err := Load(cfg, WithPrefix(""))

			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}

			if !tt.wantErr && !reflect.DeepEqual(*cfg, tt.expected) {
				t.Errorf("Load() = %+v, want %+v", *cfg, tt.expected)
			}
		})
	}
}

func TestLoadDefaultPrefix(t *testing.T) {
	os.Setenv("BEAVER_TEST_STRING", "prefixed")
	os.Setenv("TEST_STRING", "bare")
	defer os.Unsetenv("BEAVER_TEST_STRING")
	defer os.Unsetenv("TEST_STRING")

	cfg := &TestConfig{}
	if err := Load(cfg); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.StringField != "prefixed" {
		t.Errorf("StringField = %v, want %v", cfg.StringField, "prefixed")
	}
}

func TestLoadRequired(t *testing.T) {
	type RequiredConfig struct {
		Name string `env:"REQUIRED_NAME,required"`
	}

	os.Unsetenv("APP_REQUIRED_NAME")

	err := Load(&RequiredConfig{}, WithPrefix("APP_"))
	if !errors.Is(err, ErrRequired) {
		t.Fatalf("expected ErrRequired, got %v", err)
	}

	os.Setenv("APP_REQUIRED_NAME", "demo")
	defer os.Unsetenv("APP_REQUIRED_NAME")

	cfg := &RequiredConfig{}
	if err := Load(cfg, WithPrefix("APP_")); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Name != "demo" {
		t.Errorf("Name = %v, want %v", cfg.Name, "demo")
	}
}

func TestLoadRejectsNonPointer(t *testing.T) {
	if err := Load(TestConfig{}); err == nil {
		t.Error("Load() should reject a non-pointer value")
	}
}

func TestLoadWithDebug(t *testing.T) {
	os.Setenv("TEST_STRING", "debug-test")
	defer os.Unsetenv("TEST_STRING")

	cfg := &TestConfig{}
	err := Load(cfg, LoadOptions{Prefix: "", Debug: true})
	if err != nil {
		t.Errorf("Load() with debug enabled failed: %v", err)
	}

	if cfg.StringField != "debug-test" {
		t.Errorf("StringField = %v, want %v", cfg.StringField, "debug-test")
	}
}

func TestRedact(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"BEAVER_MEDIA_API_SECRET", "abc", "****"},
		{"BEAVER_MEDIA_AUTH_TOKEN_KEY", "00ff", "****"},
		{"BEAVER_MEDIA_CLOUD_NAME", "demo", "demo"},
		{"BEAVER_MEDIA_API_SECRET", "", ""},
	}

	for _, tt := range tests {
		if got := redact(tt.name, tt.value); got != tt.want {
			t.Errorf("redact(%q, %q) = %q, want %q", tt.name, tt.value, got, tt.want)
		}
	}
}

func TestSetFieldValue(t *testing.T) {
	tests := []struct {
		name      string
		fieldType string
		value     string
		wantErr   bool
	}{
		{name: "valid string", fieldType: "string", value: "test"},
		{name: "valid int", fieldType: "int", value: "123"},
		{name: "valid int64", fieldType: "int64", value: "9223372036854775807"},
		{name: "valid bool true", fieldType: "bool", value: "true"},
		{name: "valid bool 0", fieldType: "bool", value: "0"},
		{name: "valid duration", fieldType: "duration", value: "1h30m"},
		{name: "valid list", fieldType: "list", value: "a,b"},
		{name: "invalid int", fieldType: "int", value: "abc", wantErr: true},
		{name: "invalid bool", fieldType: "bool", value: "yes", wantErr: true},
		{name: "invalid duration", fieldType: "duration", value: "90", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg interface{}
			switch tt.fieldType {
			case "string":
				cfg = &struct{ Field string }{}
			case "int":
				cfg = &struct{ Field int }{}
			case "int64":
				cfg = &struct{ Field int64 }{}
			case "bool":
				cfg = &struct{ Field bool }{}
			case "duration":
				cfg = &struct{ Field time.Duration }{}
			case "list":
				cfg = &struct{ Field []string }{}
			}

			field := reflect.ValueOf(cfg).Elem().Field(0)

			err := setFieldValue(field, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("setFieldValue() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestComplexEnvTag(t *testing.T) {
	type ComplexConfig struct {
		Field1 string `env:"COMPLEX_FIELD1,default:value1"`
		Field2 string `env:"COMPLEX_FIELD2,default:value2,other:ignored"`
		Field3 string `env:"COMPLEX_FIELD3,something,default:value3"`
	}

	cfg := &ComplexConfig{}
	if err := Load(cfg); err != nil {
		t.Errorf("Load() failed: %v", err)
	}

	if cfg.Field1 != "value1" {
		t.Errorf("Field1 = %v, want %v", cfg.Field1, "value1")
	}
	if cfg.Field2 != "value2" {
		t.Errorf("Field2 = %v, want %v", cfg.Field2, "value2")
	}
	if cfg.Field3 != "value3" {
		t.Errorf("Field3 = %v, want %v", cfg.Field3, "value3")
	}
}

func TestUnsupportedFieldType(t *testing.T) {
	type UnsupportedConfig struct {
		FloatField float64 `env:"TEST_FLOAT"`
	}

	os.Setenv("TEST_FLOAT", "3.14")
	defer os.Unsetenv("TEST_FLOAT")

	cfg := &UnsupportedConfig{}
	if err := Load(cfg, WithPrefix("")); err != nil {
		t.Errorf("Load() should not error for unsupported types, got: %v", err)
	}

	if cfg.FloatField != 0 {
		t.Errorf("FloatField = %v, want %v", cfg.FloatField, 0)
	}
}

func TestLoadNestedStruct(t *testing.T) {
	type Inner struct {
		Key string `env:"INNER_KEY,default:inner"`
	}
	type Outer struct {
		Name  string `env:"OUTER_NAME"`
		Inner Inner
		Embedded
	}

	os.Setenv("NEST_OUTER_NAME", "outer")
	os.Setenv("NEST_EMBEDDED_FLAG", "true")
	defer os.Unsetenv("NEST_OUTER_NAME")
	defer os.Unsetenv("NEST_EMBEDDED_FLAG")

	cfg := &Outer{}
	if err := Load(cfg, WithPrefix("NEST_")); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Name != "outer" || cfg.Inner.Key != "inner" || !cfg.Flag {
		t.Errorf("unexpected nested config: %+v", cfg)
	}
}

type Embedded struct {
	Flag bool `env:"EMBEDDED_FLAG"`
}
