// apps/solver/assets/embed.go
//
// Embedded defaults: small answer/guess lists and the SQL migrations.

package assets

import (
	"bufio"
	"embed"
	"io/fs"
	"strings"
)

//go:embed allowed.txt answers.txt sql/*.sql
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// AnswersList returns the embedded answer words.
func AnswersList() ([]string, error) {
	return readLines("answers.txt")
}

// AllowedList returns the embedded extra guess words.
func AllowedList() ([]string, error) {
	return readLines("allowed.txt")
}

// Migrations returns the embedded migration directory rooted at sql/.
func Migrations() (fs.FS, error) {
	return fs.Sub(FS, "sql")
}
