package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

// Valores padrão (sobrescritos por ldflags ou por build info)
var Version = "0.0.0-dev"
var Commit = ""
var BuildTime = ""

// buildSetting procura uma chave nas configurações de build embutidas pelo Go.
func buildSetting(bi *debug.BuildInfo, key string) (string, bool) {
	for _, s := range bi.Settings {
		if s.Key == key {
			return s.Value, true
		}
	}
	return "", false
}

// populateFromBuildInfo preenche Commit e BuildTime a partir de vcs.* quando o
// binário não recebeu ldflags. Uma versão já definida por ldflags não é alterada.
func populateFromBuildInfo(bi *debug.BuildInfo) {
	if bi == nil {
		return
	}

	if Commit == "" {
		if rev, ok := buildSetting(bi, "vcs.revision"); ok && len(rev) >= 7 {
			Commit = rev[:7]
		}
	}

	if BuildTime == "" {
		if t, ok := buildSetting(bi, "vcs.time"); ok && t != "" {
			if ts, err := time.Parse(time.RFC3339, t); err == nil {
				BuildTime = ts.UTC().Format("2006-01-02T15:04:05Z")
			}
		}
	}

	if Version != "" && Version != "0.0.0-dev" {
		return
	}

	// go install módulo@vX.Y.Z grava a versão do módulo principal.
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		Version = strings.TrimPrefix(v, "v")
		return
	}

	if m, ok := buildSetting(bi, "vcs.modified"); ok && strings.EqualFold(m, "true") {
		Version = "0.0.0-dev-dirty"
	}
}

func init() {
	bi, ok := debug.ReadBuildInfo()
	if ok {
		populateFromBuildInfo(bi)
	}
}

// FormatVersion retorna a versão formatada com commit e build time.
// Ex.: "1.2.3 (commit: abc1234, built at: 2025-10-23T10:20:30Z)"
func FormatVersion() string {
	ver := Version
	if ver == "" {
		ver = "0.0.0-dev"
	}

	if Commit == "" && BuildTime == "" {
		return fmt.Sprintf("%s (development)", ver)
	}

	commit := Commit
	if commit == "" {
		commit = "development"
	}

	if BuildTime != "" {
		return fmt.Sprintf("%s (commit: %s, built at: %s)", ver, commit, BuildTime)
	}

	return fmt.Sprintf("%s (commit: %s)", ver, commit)
}
