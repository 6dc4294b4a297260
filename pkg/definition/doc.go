// Package definition loads printable form definitions from YAML or JSON
// documents into model.Form values. The business intake form ships embedded in
// the binary, so the default content is fixed at compile time; callers can
// point the loader at their own documents on disk or inside an fs.FS.
//
// A definition looks like:
//
//	id: business-information
//	header:
//	  title: Business Information Form
//	sections:
//	  - title: Business Details & Branding
//	    questions:
//	      - number: "1"
//	        label: Business Name
//	        required: true
//	        content:
//	          - kind: answer_space
//
// Inline markup inside instruction items and notes is restricted to a small
// set of phrasing elements and sanitised on load.
package definition
