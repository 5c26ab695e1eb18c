package installer

// Installer describes one discovered macOS installer application bundle and
// the volume name its installation media will be written to. Built once at
// startup and treated as immutable for the rest of the run.
type Installer struct {
	Name      string
	Path      string
	Volume    string
	SizeBytes uint64
}

// Target is one row of the configured installer table: the human name, the
// substring that identifies its bundle in the applications directory, and
// the partition volume name reserved for it.
type Target struct {
	Name    string
	Keyword string
	Volume  string
}

// Longer composite names come before the names they contain, so "High
// Sierra" claims its bundle before the "Sierra" row scans.
func DefaultTargets() []Target {
	return []Target{
		{Name: "macOS Ventura", Keyword: "Ventura", Volume: "INSTALL_VENTURA"},
		{Name: "macOS Monterey", Keyword: "Monterey", Volume: "INSTALL_MONTEREY"},
		{Name: "macOS Big Sur", Keyword: "Big Sur", Volume: "INSTALL_BIGSUR"},
		{Name: "macOS Catalina", Keyword: "Catalina", Volume: "INSTALL_CATALINA"},
		{Name: "macOS Mojave", Keyword: "Mojave", Volume: "INSTALL_MOJAVE"},
		{Name: "macOS High Sierra", Keyword: "High Sierra", Volume: "INSTALL_HIGHSIERRA"},
		{Name: "macOS Sierra", Keyword: "Sierra", Volume: "INSTALL_SIERRA"},
		{Name: "OS X El Capitan", Keyword: "El Capitan", Volume: "INSTALL_ELCAPITAN"},
		{Name: "OS X Yosemite", Keyword: "Yosemite", Volume: "INSTALL_YOSEMITE"},
	}
}
