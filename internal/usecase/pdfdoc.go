package usecase

import (
	"fmt"
	"time"
)

const printStyle = `
	@page { size: A4; margin: 2cm; }
	body {
		font-family: Arial, Helvetica, sans-serif;
		line-height: 1.6;
		color: #1e293b;
		background-color: #ffffff;
	}
	h1, h2, h3, h4, h5, h6 { color: #1e293b; margin-top: 1em; margin-bottom: 0.5em; }
	h1 { color: #6366f1; font-size: 24px; border-bottom: 3px solid #6366f1; padding-bottom: 10px; }
	h2 { color: #8b5cf6; font-size: 20px; border-bottom: 2px solid #8b5cf6; padding-bottom: 8px; }
	h3 { color: #ec4899; font-size: 18px; }
	ul, ol { margin-left: 20px; margin-bottom: 1em; }
	li { margin-bottom: 0.5em; }
	p { margin-bottom: 1em; }
	.card {
		border: 1px solid #e2e8f0;
		border-radius: 8px;
		padding: 15px;
		margin-bottom: 15px;
		background-color: #f8fafc;
	}
	.badge {
		display: inline-block;
		padding: 4px 12px;
		border-radius: 12px;
		background-color: #e0e7ff;
		color: #4338ca;
		font-size: 12px;
		margin-right: 5px;
		margin-bottom: 5px;
	}
	strong { color: #0f172a; }
	em { color: #475569; }
	code {
		background-color: #f1f5f9;
		padding: 2px 6px;
		border-radius: 4px;
		font-family: monospace;
		font-size: 0.9em;
	}
	blockquote {
		border-left: 4px solid #6366f1;
		padding-left: 15px;
		margin-left: 0;
		color: #64748b;
		font-style: italic;
	}
	table { width: 100%; border-collapse: collapse; margin-bottom: 1em; }
	th, td { border: 1px solid #e2e8f0; padding: 8px; text-align: left; }
	th { background-color: #f1f5f9; font-weight: bold; }
	.header {
		text-align: center;
		margin-bottom: 30px;
		padding-bottom: 20px;
		border-bottom: 3px solid #6366f1;
	}
	.header h1 { color: #6366f1; font-size: 28px; margin-bottom: 10px; border-bottom: none; }
	.header p { color: #64748b; font-size: 14px; }
`

// printDocument wraps the model's HTML fragment into the self-contained
// document fed to the PDF renderer.
func printDocument(content string, now time.Time) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>%s</style>
</head>
<body>
<div class="header">
<h1>AI Tech Career Path Plan</h1>
<p>Generated on %s</p>
</div>
<div class="content">
%s
</div>
</body>
</html>
`, printStyle, now.Format("January 2, 2006 at 3:04 PM"), content)
}
