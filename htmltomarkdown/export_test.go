package htmltomarkdown

var TrimCodeBlockWhitespace = trimCodeBlockWhitespace
