package transpile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformPlainJSPassesThrough(t *testing.T) {
	tr := New()
	src := "const add = (a, b) => a + b;\nexport default add;\n"

	out, err := tr.Transform("/lib/add.js", src)

	require.NoError(t, err)
	assert.Equal(t, src, out.Code)
	assert.Empty(t, out.Warnings)
}

func TestTransformJSXElement(t *testing.T) {
	tr := New()

	out, err := tr.Transform("/App.jsx", `const a = <div className="box">Hi</div>;`)

	require.NoError(t, err)
	assert.Equal(t, `const a = React.createElement("div", {className: "box"}, "Hi");`, out.Code)
}

func TestTransformJSXComponentAndBooleanProp(t *testing.T) {
	tr := New()

	out, err := tr.Transform("/App.jsx", `const a = <Button onClick={go} disabled />;`)

	require.NoError(t, err)
	assert.Equal(t, `const a = React.createElement(Button, {onClick: go, disabled: true});`, out.Code)
}

func TestTransformJSXFragmentWithChildren(t *testing.T) {
	tr := New()

	out, err := tr.Transform("/App.jsx", `const a = <>{x}<br/></>;`)

	require.NoError(t, err)
	assert.Equal(t,
		`const a = React.createElement(React.Fragment, null, x, React.createElement("br", null));`,
		out.Code)
}

func TestTransformJSXSpreadProps(t *testing.T) {
	tr := New()

	out, err := tr.Transform("/App.jsx", `const a = <div {...rest} id="a" />;`)

	require.NoError(t, err)
	assert.Equal(t,
		`const a = React.createElement("div", Object.assign({}, rest, {id: "a"}));`,
		out.Code)
}

func TestTransformJSXTextWhitespace(t *testing.T) {
	tr := New()
	src := "const a = <div>\n  Hello {name}!\n</div>;"

	out, err := tr.Transform("/App.jsx", src)

	require.NoError(t, err)
	assert.Equal(t, `const a = React.createElement("div", null, "Hello ", name, "!");`, out.Code)
}

func TestTransformJSXCommentChildSkipped(t *testing.T) {
	tr := New()

	out, err := tr.Transform("/App.jsx", `const a = <div>{/* note */}ok</div>;`)

	require.NoError(t, err)
	assert.Equal(t, `const a = React.createElement("div", null, "ok")`+";", out.Code)
}

func TestTransformJSXNested(t *testing.T) {
	tr := New()

	out, err := tr.Transform("/App.jsx", `const a = <ul><li>one</li><li>two</li></ul>;`)

	require.NoError(t, err)
	assert.Equal(t,
		`const a = React.createElement("ul", null, `+
			`React.createElement("li", null, "one"), `+
			`React.createElement("li", null, "two"));`,
		out.Code)
}

func TestTransformComparisonNotTreatedAsJSX(t *testing.T) {
	tr := New()
	src := "const ok = a < b && b > c;\n"

	out, err := tr.Transform("/App.jsx", src)

	require.NoError(t, err)
	assert.Equal(t, src, out.Code)
}

func TestTransformJSXUnterminatedElementFails(t *testing.T) {
	tr := New()

	_, err := tr.Transform("/App.jsx", `const a = <div>oops;`)

	require.Error(t, err)
	var diag *Diagnostic
	require.ErrorAs(t, err, &diag)
	assert.Equal(t, "/App.jsx", diag.Path)
}

func TestTransformJSXMismatchedClosingTagFails(t *testing.T) {
	tr := New()

	_, err := tr.Transform("/App.jsx", `const a = <div>text</span>;`)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "</div>")
}

func TestTransformRuntimeImportBecomesGlobalBinding(t *testing.T) {
	tr := New()

	out, err := tr.Transform("/App.jsx", `import React, { useState } from "react";`)

	require.NoError(t, err)
	assert.Equal(t, `const React = window.React; const {useState} = window.React;`, out.Code)
}

func TestTransformRuntimeImportAliasedAndNamespace(t *testing.T) {
	tr := New()

	out, err := tr.Transform("/App.jsx", `import { createRoot as mount } from "react-dom/client";`)

	require.NoError(t, err)
	assert.Equal(t, `const {createRoot: mount} = window.ReactDOM;`, out.Code)
}

func TestTransformRelativeImportResolved(t *testing.T) {
	tr := New()

	out, err := tr.Transform("/pages/Home.jsx", `import Button from "../components/Button";`)

	require.NoError(t, err)
	assert.Equal(t, `import Button from "/components/Button";`, out.Code)
}

func TestTransformAliasImportResolved(t *testing.T) {
	tr := New()

	out, err := tr.Transform("/App.jsx", `import { helper } from "@/lib/util";`)

	require.NoError(t, err)
	assert.Equal(t, `import { helper } from "/lib/util";`, out.Code)
}

func TestTransformStylesheetImportDropped(t *testing.T) {
	tr := New()

	out, err := tr.Transform("/App.jsx", "import \"./styles.css\";\nconst a = 1;\n")

	require.NoError(t, err)
	assert.NotContains(t, out.Code, "styles.css")
	assert.Contains(t, out.Code, "const a = 1;")
}

func TestTransformUnknownBareImportWarnsAndRemoves(t *testing.T) {
	tr := New()

	out, err := tr.Transform("/App.jsx", "import _ from \"lodash\";\nconst a = 1;\n")

	require.NoError(t, err)
	assert.NotContains(t, out.Code, "lodash")
	require.Len(t, out.Warnings, 1)
	assert.Equal(t, `/App.jsx: unresolved import "lodash"`, out.Warnings[0])
}

func TestTransformReexportResolved(t *testing.T) {
	tr := New()

	out, err := tr.Transform("/components/index.js", `export { Button } from "./Button";`)

	require.NoError(t, err)
	assert.Equal(t, `export { Button } from "/components/Button";`, out.Code)
}

func TestTransformTypeScriptStripsDeclarations(t *testing.T) {
	tr := New()
	src := "interface User { name: string; age: number }\n" +
		"type ID = string | number;\n" +
		"export function greet(name: string): string {\n" +
		"  return \"Hi \" + name;\n" +
		"}\n"

	out, err := tr.Transform("/util.ts", src)

	require.NoError(t, err)
	assert.NotContains(t, out.Code, "interface")
	assert.NotContains(t, out.Code, "type ID")
	assert.NotContains(t, out.Code, ": string")
	assert.Contains(t, out.Code, "greet(name)")
	assert.Contains(t, out.Code, `return "Hi " + name;`)
}

func TestTransformTypeScriptKeepsTernary(t *testing.T) {
	tr := New()
	src := "const label = count === 1 ? \"item\" : \"items\";\n"

	out, err := tr.Transform("/util.ts", src)

	require.NoError(t, err)
	assert.Equal(t, src, out.Code)
}

func TestTransformTypeScriptStripsAssertionsAndNonNull(t *testing.T) {
	tr := New()
	src := "const el = document.getElementById(\"root\")!;\nconst n = value as number;\n"

	out, err := tr.Transform("/util.ts", src)

	require.NoError(t, err)
	assert.NotContains(t, out.Code, "as number")
	assert.NotContains(t, out.Code, "!")
	assert.Contains(t, out.Code, `document.getElementById("root")`)
}

func TestTransformTypeOnlyImportDropped(t *testing.T) {
	tr := New()
	src := "import type { User } from \"./types\";\nconst a = 1;\n"

	out, err := tr.Transform("/util.ts", src)

	require.NoError(t, err)
	assert.NotContains(t, out.Code, "types")
	assert.Contains(t, out.Code, "const a = 1;")
}

func TestTransformInlineTypeSpecifiersDropped(t *testing.T) {
	tr := New()

	out, err := tr.Transform("/util.ts", `import { type User, load } from "./api";`)

	require.NoError(t, err)
	assert.Equal(t, `import {load} from "/api";`, out.Code)
}

func TestTransformTSXJSXAndTypesTogether(t *testing.T) {
	tr := New()
	src := "export default function Badge({ label }: { label: string }) {\n" +
		"  return <span className=\"badge\">{label}</span>;\n" +
		"}\n"

	out, err := tr.Transform("/Badge.tsx", src)

	require.NoError(t, err)
	assert.NotContains(t, out.Code, ": string")
	assert.Contains(t, out.Code, `React.createElement("span", {className: "badge"}, label)`)
}

func TestTransformCustomRuntime(t *testing.T) {
	tr := NewWithOptions(Options{
		Runtime:        "h",
		RuntimeGlobals: map[string]string{"preact": "window.preact"},
	})

	out, err := tr.Transform("/App.jsx", `const a = <div>x</div>;`)

	require.NoError(t, err)
	assert.Equal(t, `const a = h.createElement("div", null, "x");`, out.Code)
}

func TestDiagnosticError(t *testing.T) {
	d := &Diagnostic{Path: "/App.jsx", Message: "unterminated element <div>"}
	assert.Equal(t, "/App.jsx: unterminated element <div>", d.Error())
}
