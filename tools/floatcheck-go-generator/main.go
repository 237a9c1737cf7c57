// floatcheck-go-generator scans a module for calls to the floatcheck
// assert API and generates a registration file for them. Registration
// makes must-hit assertions known ahead of a run, so a property whose call
// site is never executed still shows up as missing instead of silently
// disappearing from the output.
//
// It is intended to run via go:generate from a file in the target module:
//
//	//go:generate go run github.com/floatcheck/floatcheck-go/tools/floatcheck-go-generator
package main

import (
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"golang.org/x/mod/modfile"
	"golang.org/x/tools/go/packages"
)

const assertPackagePath = "github.com/floatcheck/floatcheck-go/assert"
const generatedSuffix = "_floatcheck.go"

// assertionHint describes how a call to one assert function translates
// into a not-yet-hit registration record.
type assertionHint struct {
	TargetFunc string
	MustHit    bool
	AssertType string
	Condition  bool
	// MessageArg is the index of the message argument in the call.
	MessageArg int
}

var assertionHints = map[string]*assertionHint{
	"Always":              {TargetFunc: "Always", MustHit: true, AssertType: "every", MessageArg: 1},
	"AlwaysOrUnreachable": {TargetFunc: "AlwaysOrUnreachable", MustHit: false, AssertType: "every", MessageArg: 1},
	"Sometimes":           {TargetFunc: "Sometimes", MustHit: true, AssertType: "some", MessageArg: 1},
	"Unreachable":         {TargetFunc: "Unreachable", MustHit: false, AssertType: "none", Condition: true, MessageArg: 0},
	"Reachable":           {TargetFunc: "Reachable", MustHit: true, AssertType: "none", Condition: true, MessageArg: 0},
	"AlwaysNear":          {TargetFunc: "AlwaysNear", MustHit: true, AssertType: "every", MessageArg: 2},
	"SometimesNear":       {TargetFunc: "SometimesNear", MustHit: true, AssertType: "some", MessageArg: 2},
}

type expectedAssertion struct {
	Message   string
	Classname string
	Funcname  string
	Filename  string
	Line      int
	*assertionHint
}

type fileScanner struct {
	fset        *token.FileSet
	packageName string
	funcName    string
	qualifiers  []string
	expects     []*expectedAssertion
}

// qualifierFor returns the non-empty selector qualifier when expr names an
// import of the assert package in the current file.
func (s *fileScanner) qualifierFor(expr ast.Expr) string {
	ident, ok := expr.(*ast.Ident)
	if !ok {
		return ""
	}
	for _, q := range s.qualifiers {
		if q == ident.Name {
			return q
		}
	}
	return ""
}

// messageAt resolves the message argument to compile-time text where
// possible: a string literal directly, or a const/var initialized from
// one. Anything else keeps the identifier spelling.
func messageAt(args []ast.Expr, idx int) string {
	if idx < 0 || len(args) <= idx {
		return "anonymous"
	}
	switch arg := args[idx].(type) {
	case *ast.BasicLit:
		text, _ := strconv.Unquote(arg.Value)
		return text
	case *ast.Ident:
		if arg.Obj == nil || arg.Obj.Decl == nil {
			return arg.String()
		}
		if valueSpec, ok := arg.Obj.Decl.(*ast.ValueSpec); ok && len(valueSpec.Values) > 0 {
			if lit, ok := valueSpec.Values[0].(*ast.BasicLit); ok {
				text, _ := strconv.Unquote(lit.Value)
				return text
			}
		}
		return arg.String()
	}
	return "anonymous"
}

func (s *fileScanner) inspect(x ast.Node) bool {
	switch node := x.(type) {
	case *ast.ImportSpec:
		pathName, _ := strconv.Unquote(node.Path.Value)
		if pathName == assertPackagePath {
			qualifier := path.Base(pathName)
			if node.Name != nil {
				qualifier = node.Name.Name
			}
			s.qualifiers = append(s.qualifiers, qualifier)
		}
		return true

	case *ast.FuncDecl:
		s.funcName = "anonymous"
		if node.Name != nil {
			s.funcName = node.Name.Name
		}
		return true

	case *ast.CallExpr:
		selExpr, ok := node.Fun.(*ast.SelectorExpr)
		if !ok {
			return true // recurse further
		}
		hint := assertionHints[selExpr.Sel.Name]
		if hint == nil || s.qualifierFor(selExpr.X) == "" {
			return false
		}
		position := s.fset.Position(selExpr.Pos())
		s.expects = append(s.expects, &expectedAssertion{
			Message:       messageAt(node.Args, hint.MessageArg),
			Classname:     s.packageName,
			Funcname:      s.funcName,
			Filename:      position.Filename,
			Line:          position.Line,
			assertionHint: hint,
		})
		return false
	}
	return true
}

func (s *fileScanner) scanFile(filePath string) error {
	s.qualifiers = nil
	s.funcName = ""
	file, err := parser.ParseFile(s.fset, filePath, nil, 0)
	if err != nil {
		return err
	}
	ast.Inspect(file, s.inspect)
	return nil
}

// moduleName reads the module path from the go.mod in dir.
func moduleName(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", err
	}
	f, err := modfile.ParseLax("go.mod", data, nil)
	if err != nil {
		return "", err
	}
	if f.Module == nil {
		return "", fmt.Errorf("go.mod in %s has no module directive", dir)
	}
	return f.Module.Mod.Path, nil
}

const registrationTemplate = `// Code generated by floatcheck-go-generator for {{.ModuleName}}. DO NOT EDIT.

package {{.PackageName}}

import (
	fcassert "{{.AssertPackage}}"
)

func init() {
	var noValues map[string]any
{{- range .Expects}}
	fcassert.AssertRaw({{.Condition}}, {{printf "%q" .Message}}, noValues, {{printf "%q" .Classname}}, {{printf "%q" .Funcname}}, {{printf "%q" .Filename}}, {{.Line}}, false, {{.MustHit}}, true, {{printf "%q" .AssertType}})
{{- end}}
}
`

type genInfo struct {
	ModuleName    string
	PackageName   string
	AssertPackage string
	Expects       []*expectedAssertion
}

// outputFile derives the generated file path from the go:generate
// context: the registration file sits next to the file carrying the
// directive.
func outputFile() (string, error) {
	fromFile := os.Getenv("GOFILE")
	if fromFile == "" {
		return "", fmt.Errorf("GOFILE is not set; run via go generate")
	}
	base := strings.TrimSuffix(fromFile, path.Ext(fromFile))
	return base + generatedSuffix, nil
}

func main() {
	var verbose bool
	flag.BoolVar(&verbose, "v", false, "verbose messages to stdout")
	flag.Parse()

	moduleDir := flag.Arg(0)
	if moduleDir == "" {
		moduleDir = "."
	}
	modName, err := moduleName(moduleDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to determine module: %v\n", err)
		os.Exit(1)
	}
	if verbose {
		fmt.Printf(">> Module: %s\n", modName)
	}

	cfg := &packages.Config{
		Mode: packages.NeedModule | packages.NeedCompiledGoFiles | packages.NeedName,
		Dir:  moduleDir,
	}
	pkgs, err := packages.Load(cfg, "./...")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to load packages: %v\n", err)
		os.Exit(1)
	}

	scanner := &fileScanner{fset: token.NewFileSet()}
	for _, pkg := range pkgs {
		scanner.packageName = pkg.Name
		if verbose {
			fmt.Printf(">>   Package: %s (%s)\n", pkg.Name, pkg.PkgPath)
		}
		for _, filePath := range pkg.CompiledGoFiles {
			if strings.HasSuffix(path.Base(filePath), generatedSuffix) {
				continue
			}
			if verbose {
				fmt.Printf(">>     File: %s\n", filePath)
			}
			if err := scanner.scanFile(filePath); err != nil {
				fmt.Fprintf(os.Stderr, "Unable to scan %s: %v\n", filePath, err)
				os.Exit(1)
			}
		}
	}

	if len(scanner.expects) == 0 {
		if verbose {
			fmt.Println(">> No assertions found, nothing to generate")
		}
		return
	}

	outPath, err := outputFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to open %s: %v\n", outPath, err)
		os.Exit(1)
	}
	defer out.Close()

	tmpl := template.Must(template.New("registration").Parse(registrationTemplate))
	info := &genInfo{
		ModuleName:    modName,
		PackageName:   os.Getenv("GOPACKAGE"),
		AssertPackage: assertPackagePath,
		Expects:       scanner.expects,
	}
	if info.PackageName == "" {
		info.PackageName = "main"
	}
	if err := tmpl.Execute(out, info); err != nil {
		fmt.Fprintf(os.Stderr, "Unable to generate %s: %v\n", outPath, err)
		os.Exit(1)
	}
	if verbose {
		fmt.Printf(">> Registered %d assertions in %s\n", len(scanner.expects), outPath)
	}
}
