package render

// documentStyle is the fixed style block of the output skeleton. It is
// legacy formatting carried over verbatim so that output documents stay
// byte-compatible with previously generated invoices, including the
// modern color functions the downstream rasterizer supports.
const documentStyle = `img {
    width: 100%;
    height: auto;
    display: block;
    margin: 0;
    padding: 0;
    object-fit: contain;
}

:root {
    --primary-color: oklab(0.6 0.1 0.2);
    --text-color: oklch(0.15 0.02 250);
    --border-color: color(display-p3 0.5 0.5 0.5);
    --highlight-bg: lab(95 0 0);
}

@media (prefers-color-scheme: dark) {
    body {
        color: var(--text-color);
        background-color: oklch(0.98 0.01 250);
    }
}

h3 {
    font-family: "Open Sans", sans-serif;
    font-size: 18pt;
    font-weight: bold;
    color: var(--primary-color);
}

a {
    font-family: "Open Sans", sans-serif;
    font-size: 12pt;
    font-style: italic;
    color: color(from var(--primary-color) srgb r g b / 0.8);
}

body, p, table, tr, td {
    vertical-align: top;
    font-family: "Open Sans", sans-serif;
    font-size: 13pt;
    color: var(--text-color);
}

tr.alternate-row {
    background: oklch(0.95 0.01 250);
}

tr {
    page-break-inside: avoid !important;
}

html, body {
    height: 100vh;
    margin: 0;
}

td, th {
    border-color: var(--border-color);
}

th.column-heading-left {
    text-align: left;
    font-family: "Open Sans", sans-serif;
    font-size: 12pt;
    background: var(--highlight-bg);
}

th.column-heading-center {
    text-align: center;
    font-family: "Open Sans", sans-serif;
    font-size: 12pt;
    background: var(--highlight-bg);
}

th.column-heading-right {
    text-align: right;
    font-family: "Open Sans", sans-serif;
    font-size: 12pt;
    background: var(--highlight-bg);
}

td.highlight {
    background-color: var(--highlight-bg);
}

td.neg {
    color: oklch(0.6 0.2 30);
}

td.number-cell, td.total-number-cell {
    text-align: right;
    white-space: nowrap;
}

td.date-cell {
    white-space: nowrap;
}

td.anchor-cell {
    white-space: nowrap;
    font-family: "Open Sans", sans-serif;
    font-size: 13pt;
}

td.number-cell {
    font-family: "Open Sans", sans-serif;
    font-size: 14pt;
}

td.number-header {
    text-align: right;
    font-family: "Open Sans", sans-serif;
    font-size: 12pt;
}

td.text-cell {
    font-family: "Open Sans", sans-serif;
    font-size: 13pt;
}

td.total-number-cell {
    font-family: "Open Sans", sans-serif;
    font-size: 14pt;
    font-weight: bold;
    color: var(--primary-color);
}

td.total-label-cell {
    font-family: "Open Sans", sans-serif;
    font-size: 14pt;
    font-weight: bold;
}

td.centered-label-cell {
    text-align: center;
    font-family: "Open Sans", sans-serif;
    font-size: 14pt;
    font-weight: bold;
}

sub { top: 0.4em; }
sub, sup { vertical-align: baseline; position: relative; top: -0.4em; }

@media print {
    html, body { height: unset; }
}

.div-align-right { float: right; }
.div-align-right .maybe-align-right { text-align: right }

.entries-table * {
    border-width: 1px;
    border-style: solid;
    border-collapse: collapse;
    border-color: var(--border-color);
}

.entries-table > table { width: 100% }
.company-table > table * { padding: 0px; }
.client-table > table * { padding: 0px; }
.invoice-details-table > table * { padding: 0px; text-indent: 0.2em; }
.main-table > table { width: 80%; }

.company-name, .client-name {
    font-size: x-large;
    margin: 0;
    line-height: 1.25;
    color: var(--primary-color);
}

.client-table .client-name { text-align: left; }
.client-table .maybe-align-right { text-align: left; }

.invoice-title {
    font-weight: bold;
    color: var(--primary-color);
    font-size: 1.2em;
}

.invoice-notes {
    margin-top: 0;
    width: 100%;
    color: oklch(0.3 0.01 250);
}`
