package diff

import "strings"

var mainGoLines = []string{
	"diff --git a/main.go b/main.go",
	"index 1111111..2222222 100644",
	"--- a/main.go",
	"+++ b/main.go",
	"@@ -1,3 +1,4 @@",
	" package main",
	`+import "fmt"`,
	" ",
	" func a() {}",
	"@@ -10,3 +11,3 @@ func b() {",
	" \tx := 1",
	"-\ty := 2",
	"+\ty := 3",
	" \treturn",
}

var utilGoLines = []string{
	"diff --git a/util.go b/util.go",
	"index 3333333..4444444 100644",
	"--- a/util.go",
	"+++ b/util.go",
	"@@ -1,2 +1,2 @@",
	"-package old",
	"+package util",
	" // end",
}

var deletedLines = []string{
	"diff --git a/gone.txt b/gone.txt",
	"deleted file mode 100644",
	"index 5555555..0000000",
	"--- a/gone.txt",
	"+++ /dev/null",
	"@@ -1,2 +0,0 @@",
	"-line one",
	"-line two",
}

var binaryLines = []string{
	"diff --git a/logo.png b/logo.png",
	"new file mode 100644",
	"index 0000000..6666666",
	"GIT binary patch",
	"literal 4",
	"LcmZ?wbYK7g0LcI-",
	"",
	"literal 0",
	"HcmV?d00001",
	"",
}

var renameLines = []string{
	"diff --git a/old.go b/new.go",
	"similarity index 100%",
	"rename from old.go",
	"rename to new.go",
}

func concat(groups ...[]string) []string {
	var out []string
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func text(lines []string) string {
	return strings.Join(lines, "\n") + "\n"
}
