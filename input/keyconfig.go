package input

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keyByName maps lowercase keymap names to special keys
var keyByName = map[string]tcell.Key{
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"enter":     tcell.KeyEnter,
	"escape":    tcell.KeyEscape,
	"esc":       tcell.KeyEscape,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"pgup":      tcell.KeyPgUp,
	"pgdn":      tcell.KeyPgDn,
	"insert":    tcell.KeyInsert,
	"delete":    tcell.KeyDelete,
	"ctrl-a":    tcell.KeyCtrlA,
	"ctrl-c":    tcell.KeyCtrlC,
	"ctrl-d":    tcell.KeyCtrlD,
	"ctrl-g":    tcell.KeyCtrlG,
	"ctrl-p":    tcell.KeyCtrlP,
	"ctrl-q":    tcell.KeyCtrlQ,
	"ctrl-s":    tcell.KeyCtrlS,
	"ctrl-x":    tcell.KeyCtrlX,
	"f1":        tcell.KeyF1,
	"f2":        tcell.KeyF2,
	"f3":        tcell.KeyF3,
	"f4":        tcell.KeyF4,
}

// keymapFile is the on-disk layout of a keymap
type keymapFile struct {
	Keys  map[string]string `toml:"keys"`
	Runes map[string]string `toml:"runes"`
}

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
// Only keys present in the TOML are populated
// Returns error on unknown sections, action names, key names, or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var raw keymapFile
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("keymap: unknown entry %q", undecoded[0].String())
	}

	kt := &KeyTable{
		Keys:  make(map[tcell.Key]Action, len(raw.Keys)),
		Runes: make(map[rune]Action, len(raw.Runes)),
	}

	for keyStr, actionName := range raw.Keys {
		k, ok := keyByName[strings.ToLower(keyStr)]
		if !ok {
			return nil, fmt.Errorf("[keys] unknown key name: %q", keyStr)
		}
		a, ok := ActionByName(actionName)
		if !ok {
			return nil, fmt.Errorf("[keys] key %q: unknown action: %q", keyStr, actionName)
		}
		kt.Keys[k] = a
	}

	for keyStr, actionName := range raw.Runes {
		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("[runes] key %q: %w", keyStr, err)
		}
		a, ok := ActionByName(actionName)
		if !ok {
			return nil, fmt.Errorf("[runes] key %q: unknown action: %q", keyStr, actionName)
		}
		kt.Runes[r] = a
	}

	return kt, nil
}

// LoadKeymapFile reads a keymap file and merges it over the defaults
func LoadKeymapFile(path string) (*KeyTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keymap %s: %w", path, err)
	}
	override, err := LoadKeyConfig(data)
	if err != nil {
		return nil, fmt.Errorf("keymap %s: %w", path, err)
	}
	return MergeKeyTable(DefaultKeyTable(), override), nil
}

// resolveRune converts a TOML key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

// MergeKeyTable returns a new KeyTable with base values overridden by override
// Override entries bound to ActionNone delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	mergeMap(result.Keys, override.Keys)
	mergeMap(result.Runes, override.Runes)
	return result
}

func mergeMap[K comparable](base, override map[K]Action) {
	for k, v := range override {
		if v == ActionNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
