package saves

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
)

// reservedChars cannot appear in a file or folder name on any supported
// platform.
const reservedChars = `<>:"/\|?*`

var reservedNames = map[string]bool{
	"con": true, "prn": true, "aux": true, "nul": true,
	"com1": true, "com2": true, "com3": true, "com4": true, "com5": true,
	"com6": true, "com7": true, "com8": true, "com9": true,
	"lpt1": true, "lpt2": true, "lpt3": true, "lpt4": true, "lpt5": true,
	"lpt6": true, "lpt7": true, "lpt8": true, "lpt9": true,
}

// GenerateName returns name if no sibling matches it case-insensitively,
// otherwise name_N for the smallest N, counting up from 1, that is free.
// A free slot above a taken one is only reached by the scan, never jumped to.
func GenerateName(name string, siblings []string) string {
	return uniqueName(siblings, name, func(n int) string {
		return fmt.Sprintf("%s_%d", name, n)
	})
}

// GenerateFileName is GenerateName with the suffix placed before the
// extension, so a.save becomes a_1.save.
func GenerateFileName(name string, siblings []string) string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	if stem == "" {
		return GenerateName(name, siblings)
	}
	return uniqueName(siblings, name, func(n int) string {
		return fmt.Sprintf("%s_%d%s", stem, n, ext)
	})
}

func uniqueName(siblings []string, name string, candidate func(n int) string) string {
	taken := make(map[string]struct{}, len(siblings))
	for _, sibling := range siblings {
		taken[strings.ToLower(sibling)] = struct{}{}
	}

	result := name
	for n := 1; ; n++ {
		if _, exists := taken[strings.ToLower(result)]; !exists {
			return result
		}
		result = candidate(n)
	}
}

// ValidateName checks that name can be used for a new entry next to siblings.
func ValidateName(name string, siblings []string) error {
	if strings.TrimSpace(name) == "" {
		return invalidInput(name, "name cannot be empty")
	}
	if name == "." || name == ".." {
		return invalidInput(name, "name is reserved")
	}
	for _, r := range name {
		if strings.ContainsRune(reservedChars, r) || unicode.IsControl(r) {
			return invalidInput(name, fmt.Sprintf("name contains illegal character %q", r))
		}
	}
	if strings.HasSuffix(name, " ") || strings.HasSuffix(name, ".") {
		return invalidInput(name, "name cannot end with a space or a dot")
	}
	base := strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name)))
	if reservedNames[base] {
		return invalidInput(name, "name is reserved by the operating system")
	}
	for _, sibling := range siblings {
		if strings.EqualFold(sibling, name) {
			return invalidInput(name, "an item with this name already exists")
		}
	}
	return nil
}
