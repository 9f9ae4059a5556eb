package cli

import (
	"fmt"
	"io"
)

func Help(program string, stdout io.Writer) {
	fmt.Fprintln(stdout, versionLine())
	fmt.Fprintf(stdout, "Usage: \"%s [-Options...] FileName1 [Filename2...]\"\n", program)
	fmt.Fprintln(stdout, "")
	fmt.Fprintln(stdout, "Files ending in .json are read as saved MediaInfo JSON output (--Output=JSON);")
	fmt.Fprintln(stdout, "anything else is analyzed with the MediaInfo CLI.")
	fmt.Fprintln(stdout, "")
	fmt.Fprintln(stdout, "Options:")
	fmt.Fprintln(stdout, "--help, -h")
	fmt.Fprintln(stdout, "                    Display this help and exit")
	fmt.Fprintln(stdout, "--version")
	fmt.Fprintln(stdout, "                    Display version information and exit")
	fmt.Fprintln(stdout, "--output=text|json|yaml, -o")
	fmt.Fprintln(stdout, "                    Select output format (default from MENUINFO_OUTPUT, else text)")
	fmt.Fprintln(stdout, "--chapters, -c")
	fmt.Fprintln(stdout, "                    Print only menu chapters")
	fmt.Fprintln(stdout, "--full, -f")
	fmt.Fprintln(stdout, "                    Print every stream of the report (text or json)")
	fmt.Fprintln(stdout, "--mediainfo=...")
	fmt.Fprintln(stdout, "                    MediaInfo CLI to run (default from MENUINFO_MEDIAINFO_BIN, else mediainfo)")
	fmt.Fprintln(stdout, "--parse-speed=0..1")
	fmt.Fprintln(stdout, "                    Analysis speed/accuracy tradeoff passed to MediaInfo (default 0.5)")
	fmt.Fprintln(stdout, "--timeout=30s")
	fmt.Fprintln(stdout, "                    Timeout per MediaInfo run, 0 disables")
	fmt.Fprintln(stdout, "--logfile=...")
	fmt.Fprintln(stdout, "                    Save the output in the specified file")
	fmt.Fprintln(stdout, "--bom")
	fmt.Fprintln(stdout, "                    Byte order mark for UTF-8 output (Windows only)")
	fmt.Fprintln(stdout, "")
	fmt.Fprintln(stdout, "Environment:")
	fmt.Fprintln(stdout, "MENUINFO_MEDIAINFO_BIN, MENUINFO_PROBE_TIMEOUT, MENUINFO_PARSE_SPEED,")
	fmt.Fprintln(stdout, "MENUINFO_OUTPUT, MENUINFO_LOG_LEVEL=debug|info|warn|error")
	fmt.Fprintln(stdout, "")
	fmt.Fprintln(stdout, "Commands:")
	fmt.Fprintln(stdout, "completion           Generate the autocompletion script for the specified shell")
	fmt.Fprintln(stdout, "help                 Help about any command")
	fmt.Fprintln(stdout, "version              Print menuinfo version information")
	fmt.Fprintln(stdout, "update               Update menuinfo to latest version (release builds only)")
}

func HelpNothing(program string, stdout io.Writer) {
	fmt.Fprintf(stdout, "Usage: \"%s [-Options...] FileName1 [Filename2...]\"\n", program)
	fmt.Fprintf(stdout, "\"%s --help\" for displaying more information\n", program)
}

func Usage(program string, stdout io.Writer) int {
	HelpNothing(program, stdout)
	return exitError
}
