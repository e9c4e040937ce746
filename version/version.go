package version

var Version = "development"
