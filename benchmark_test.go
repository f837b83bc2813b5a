package ftpkit

import (
	"fmt"
	"testing"
)

func BenchmarkParseLine(b *testing.B) {
	lines := map[string]string{
		"file": "-rw-r--r--    1 ftp      ftp          4096 Jan 01 12:00 file.txt",
		"dir":  "drwxr-xr-x    2 12546    101        159744 Mar 13 21:51 2012.354",
		"link": "lrwxrwxrwx    1 ftp      ftp             8 Jan 01 12:00 mylink -> /target/path",
	}

	for name, line := range lines {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, ok := ParseLine(line); !ok {
					b.Fatal("line did not parse")
				}
			}
		})
	}
}

func BenchmarkPartitionLines(b *testing.B) {
	var lines []string
	for i := 0; i < 200; i++ {
		lines = append(lines,
			fmt.Sprintf("-rw-r--r-- 1 ftp ftp 4096 Jan 01 12:00 file%03d.txt", i),
			fmt.Sprintf("drwxr-xr-x 2 ftp ftp 4096 Jan 01 12:00 dir%03d", i),
		)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		listing := partitionLines(lines)
		if len(listing.Files) != 200 || len(listing.Directories) != 200 {
			b.Fatal("unexpected partition sizes")
		}
	}
}

func BenchmarkResolve(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Resolve("/ftp/root/path", "with/fish/file/"); err != nil {
			b.Fatal(err)
		}
	}
}
