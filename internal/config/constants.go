package config

// SourceFileExt is the extension of Turin source files.
const SourceFileExt = ".to"

// ProjectFileName is the project configuration file looked up in the
// working directory.
const ProjectFileName = "turin.yml"

// DefaultDestination is where class files land when no destination is
// configured.
const DefaultDestination = "."
