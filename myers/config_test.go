package myers

import (
	"errors"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		maxBlocks int
		wantErr   bool
	}{
		{"minimum", 1, false},
		{"default", 1024, false},
		{"ceiling", 1 << 20, false},
		{"zero", 0, true},
		{"negative", -1, true},
		{"over ceiling", 1<<20 + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Config{MaxBlocks: tt.maxBlocks}.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestCompileRejectsInvalidConfig(t *testing.T) {
	_, err := Compile([]byte("abc"), Config{MaxBlocks: 0})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Compile with zero MaxBlocks: err = %v, want ErrInvalidConfig", err)
	}
}
