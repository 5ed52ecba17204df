package latex

// documentPreamble opens every rendered document.
const documentPreamble = `\documentclass[12pt]{article}
\usepackage{amssymb}
\usepackage[fleqn]{amsmath}
\usepackage{amstext}
\usepackage{eurosym}
\usepackage{textcomp}
\usepackage{wasysym}
\usepackage[margin=1in]{geometry}
\usepackage{fancyhdr}
\usepackage{lastpage}
\pagestyle{fancy} % Set default page style to fancy
\renewcommand{\headrulewidth}{0pt} % Remove header rule
\fancyhead{} % Remove all header contents
\cfoot{Page \thepage\ of \pageref{LastPage}} % Page X of Y in the footer (centered)
\parskip 0in \parindent 0in
\begin{document}

`

// documentClosing ends every rendered document.
const documentClosing = "\n\\end{document}\n"
