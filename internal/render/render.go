// Package render draws the user list as an HTML page or a plain text table.
package render

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/geocoder89/userdesk/internal/domain/user"
	"github.com/geocoder89/userdesk/internal/view"
)

var columns = []string{"ID", "Full Name", "Gender", "Age", "Email", "Company"}

// Input is one form field as the page draws it.
type Input struct {
	Type        string
	Name        string
	Placeholder string
	Value       string
}

// PageData is what PageTemplate executes against.
type PageData struct {
	view.Snapshot
	Editing    bool
	Inputs     []Input
	Columns    []string
	ScriptPath string
}

// PageTemplateName is the name PageTemplate is registered under.
const PageTemplateName = "users"

// ScriptPath is where the page expects Script to be served.
const ScriptPath = "/assets/users.js"

// Script wires the page inputs and row buttons to the JSON routes.
//
//go:embed assets/users.js
var Script []byte

var PageTemplate = template.Must(template.New(PageTemplateName).Funcs(template.FuncMap{
	"path": func(u user.User) string { return u.DetailPath() },
}).Parse(pageHTML))

// Page builds the data PageTemplate expects.
func Page(snap view.Snapshot) PageData {
	return PageData{
		Snapshot:   snap,
		Editing:    snap.EditingID != nil,
		Inputs:     inputs(snap.Form),
		Columns:    append(append([]string{}, columns...), "Actions"),
		ScriptPath: ScriptPath,
	}
}

func HTML(w io.Writer, snap view.Snapshot) error {
	return PageTemplate.Execute(w, Page(snap))
}

func inputs(f user.Form) []Input {
	return []Input{
		{"text", user.FieldFirstName, "First Name", f.Value(user.FieldFirstName)},
		{"text", user.FieldLastName, "Last Name", f.Value(user.FieldLastName)},
		{"email", user.FieldEmail, "Email", f.Value(user.FieldEmail)},
		{"text", user.FieldGender, "Gender", f.Value(user.FieldGender)},
		{"number", user.FieldAge, "Age", f.Value(user.FieldAge)},
		{"text", user.FieldCompanyName, "Company Name", f.Value(user.FieldCompanyName)},
	}
}

// Table writes a tab aligned table in display order.
func Table(w io.Writer, users []user.User) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	for i, c := range columns {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, c)
	}
	fmt.Fprintln(tw)

	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			strconv.Itoa(u.ID), u.FullName(), u.Gender, u.AgeText(), u.Email, u.Company.Name)
	}

	return tw.Flush()
}

const pageHTML = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>User Management</title></head>
<body>
<div class="container">
{{- if .Loading}}
<p>Loading...</p>
{{- else}}
<h1>User Management</h1>
<form id="user-form" class="form">
<h2>{{if .Editing}}Edit User{{else}}Add New User{{end}}</h2>
{{- range .Inputs}}
<input type="{{.Type}}" name="{{.Name}}" placeholder="{{.Placeholder}}" value="{{.Value}}">
{{- end}}
<button type="submit">{{if .Editing}}Update{{else}}Create{{end}}</button>
{{- if .Editing}}
<button type="button" data-action="cancel">Cancel</button>
{{- end}}
</form>
<table>
<thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{- range .Users}}
<tr>
<td>{{.ID}}</td>
<td><a href="{{path .}}">{{.FullName}}</a></td>
<td>{{.Gender}}</td>
<td>{{.AgeText}}</td>
<td>{{.Email}}</td>
<td>{{.Company.Name}}</td>
<td><button type="button" data-action="edit" data-id="{{.ID}}">Edit</button><button type="button" data-action="delete" data-id="{{.ID}}">Delete</button></td>
</tr>
{{- end}}
</tbody>
</table>
<script src="{{.ScriptPath}}"></script>
{{- end}}
</div>
</body>
</html>
`
