package fonts

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(14, 10); err != nil {
		t.Fatalf("load: %v", err)
	}
	for _, name := range []FontName{HUD, HUDSmall, Mono} {
		if name.Get() == nil {
			t.Fatalf("font %s not registered", name)
		}
	}
	hud := HUD.Get().Metrics().Height
	small := HUDSmall.Get().Metrics().Height
	if hud <= small {
		t.Fatalf("expected HUD font taller than small font, got %v <= %v", hud, small)
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFont("broken", []byte("not a font")); err == nil {
		t.Fatalf("expected parse error")
	}
	if err := LoadFont("regular", goregular.TTF); err != nil {
		t.Fatalf("load: %v", err)
	}
}

func TestGetMissingFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for unknown font")
		}
	}()
	FontName("missing").Get()
}
