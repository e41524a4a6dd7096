package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// expandPath expands environment variables and a leading ~ in a configured
// path. On Windows %VAR% references and a ~\ prefix are understood as well.
func expandPath(p string) string {
	if p == "" {
		return p
	}
	p = os.ExpandEnv(p)
	if runtime.GOOS == "windows" {
		p = expandPercentVars(p)
	}

	rest, ok := strings.CutPrefix(p, "~")
	if !ok || (rest != "" && !isSeparator(rest[0])) {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	if rest == "" {
		return home
	}
	return filepath.Join(home, rest[1:])
}

func isSeparator(c byte) bool {
	return c == '/' || (runtime.GOOS == "windows" && c == '\\')
}

// expandPercentVars replaces %NAME% with the variable's value. Unset names
// and a lone % are kept as written.
func expandPercentVars(p string) string {
	var b strings.Builder
	for {
		start := strings.IndexByte(p, '%')
		if start < 0 {
			break
		}
		end := strings.IndexByte(p[start+1:], '%')
		if end < 0 {
			break
		}
		name := p[start+1 : start+1+end]
		b.WriteString(p[:start])
		if val, ok := os.LookupEnv(name); ok && name != "" {
			b.WriteString(val)
			p = p[start+end+2:]
			continue
		}
		// Keep the opening % and rescan from the closing one.
		b.WriteString("%" + name)
		p = p[start+1+end:]
	}
	b.WriteString(p)
	return b.String()
}
