package core

import "testing"

func TestApplyOptions(t *testing.T) {
	cfg := ApplyOptions(WithImplementation("Packed"), WithBoundsCheck())
	if cfg.Implementation != "packed" {
		t.Fatalf("implementation = %q, want %q", cfg.Implementation, "packed")
	}
	if !cfg.BoundsCheck {
		t.Fatal("bounds check not enabled")
	}
}

func TestDefaultKernelConfig(t *testing.T) {
	cfg := ApplyOptions()
	def := DefaultKernelConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
	if cfg.Implementation != ImplementationAuto || cfg.BoundsCheck {
		t.Fatalf("unexpected defaults %#v", cfg)
	}
}

func TestAutoImplementation(t *testing.T) {
	for _, name := range []string{"auto", " AUTO ", ""} {
		cfg := ApplyOptions(WithImplementation("generic"), WithImplementation(name))
		if cfg.Implementation != ImplementationAuto {
			t.Errorf("WithImplementation(%q) = %q, want auto", name, cfg.Implementation)
		}
	}
}

func TestNilOptionsIgnored(t *testing.T) {
	cfg := ApplyOptions(nil, WithBoundsCheck(), nil)
	if !cfg.BoundsCheck {
		t.Fatal("bounds check not enabled")
	}
}
