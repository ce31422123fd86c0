package plan

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zeebo/blake3"

	"github.com/vantagelabs/vantage/pkg/models"
)

// Write renders a plan to markdown and writes it under dir, creating
// the directory if needed. The filename is derived from a hash of the
// plan inputs so identical requests overwrite the same file instead of
// accumulating copies. Returns the written path.
func Write(p *models.DevelopmentPlan, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating plan directory: %w", err)
	}

	path := filepath.Join(dir, Filename(p))
	if err := os.WriteFile(path, []byte(Render(p)), 0o644); err != nil {
		return "", fmt.Errorf("writing plan: %w", err)
	}
	return path, nil
}

// Filename builds a stable name from the plan's features, complexity,
// and focus. The timestamp is deliberately excluded.
func Filename(p *models.DevelopmentPlan) string {
	canonical := strings.Join(p.Features, "\x00") + "\x00" + string(p.Complexity) + "\x00" + p.Focus
	sum := blake3.Sum256([]byte(canonical))
	hash := hex.EncodeToString(sum[:4])

	slug := "plan"
	if len(p.Features) > 0 {
		slug = slugify(p.Features[0])
	}
	return fmt.Sprintf("development-plan-%s-%s.md", slug, hash)
}

// slugify reduces a feature name to a short filename-safe token.
func slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '_' || r == '-':
			b.WriteRune('-')
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		slug = "plan"
	}
	if len(slug) > 40 {
		slug = slug[:40]
	}
	return slug
}
