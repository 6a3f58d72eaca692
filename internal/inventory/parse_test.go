package inventory

import (
	"reflect"
	"strings"
	"testing"
)

const (
	containerHeader = "ID\tNAMES\tIMAGE\tSTATUS\tPORTS"
	imageHeader     = "REPOSITORY\tTAG\tIMAGE ID\tCREATED AT\tSIZE"
)

func TestParseContainers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []Container
	}{
		{
			name:  "empty input",
			input: "",
			want:  []Container{},
		},
		{
			name:  "header only",
			input: containerHeader + "\n",
			want:  []Container{},
		},
		{
			name:  "typical run",
			input: containerHeader + "\nabc123456789\tweb\tnginx:latest\tUp 5 minutes\t0.0.0.0:80->80/tcp\n",
			want: []Container{
				{ID: "abc123456789", Name: "web", Image: "nginx:latest", Status: "Up 5 minutes", Ports: "0.0.0.0:80->80/tcp"},
			},
		},
		{
			name:  "missing ports",
			input: containerHeader + "\nabc\tdb\tpostgres:16\tExited (0) 2 hours ago\n",
			want: []Container{
				{ID: "abc", Name: "db", Image: "postgres:16", Status: "Exited (0) 2 hours ago"},
			},
		},
		{
			name:  "fewer than four fields dropped",
			input: containerHeader + "\nabc\tdb\tpostgres:16\nxyz\tweb\tnginx\tUp 1 second\t\n",
			want: []Container{
				{ID: "xyz", Name: "web", Image: "nginx", Status: "Up 1 second"},
			},
		},
		{
			name:  "blank lines skipped",
			input: containerHeader + "\n\n1\ta\tx\tUp\t\n\n2\tb\ty\tCreated\t\n\n",
			want: []Container{
				{ID: "1", Name: "a", Image: "x", Status: "Up"},
				{ID: "2", Name: "b", Image: "y", Status: "Created"},
			},
		},
		{
			name:  "leading blank lines before header",
			input: "\n\n" + containerHeader + "\n1\ta\tx\tUp\n",
			want: []Container{
				{ID: "1", Name: "a", Image: "x", Status: "Up"},
			},
		},
		{
			name:  "crlf line endings",
			input: containerHeader + "\r\n1\ta\tx\tUp\t:80\r\n",
			want: []Container{
				{ID: "1", Name: "a", Image: "x", Status: "Up", Ports: ":80"},
			},
		},
		{
			name:  "extra fields ignored",
			input: containerHeader + "\n1\ta\tx\tUp\t:80\tsurplus\n",
			want: []Container{
				{ID: "1", Name: "a", Image: "x", Status: "Up", Ports: ":80"},
			},
		},
		{
			name:  "header not treated as data even when well formed",
			input: "h1\th2\th3\th4\th5\n",
			want:  []Container{},
		},
		{
			name:  "trailing tab does not supply an empty status",
			input: containerHeader + "\na\tb\tc\t\n",
			want:  []Container{},
		},
		{
			name:  "empty status between tabs is kept",
			input: containerHeader + "\na\tb\tc\t\t:80\nd\te\tf\t\t\n",
			want: []Container{
				{ID: "a", Name: "b", Image: "c", Ports: ":80"},
				{ID: "d", Name: "e", Image: "f"},
			},
		},
		{
			name:  "no trailing newline",
			input: containerHeader + "\n1\ta\tx\tUp",
			want: []Container{
				{ID: "1", Name: "a", Image: "x", Status: "Up"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ParseContainers(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseContainers() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseContainers_PreservesOrder(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	sb.WriteString(containerHeader + "\n")
	names := []string{"zeta", "alpha", "mid", "alpha"}
	for i, name := range names {
		sb.WriteString(strings.Join([]string{string(rune('a' + i)), name, "img", "Up"}, "\t"))
		sb.WriteString("\n")
		if i == 1 {
			sb.WriteString("malformed\tline\n")
		}
	}

	got := ParseContainers(sb.String())
	if len(got) != len(names) {
		t.Fatalf("expected %d containers, got %d", len(names), len(got))
	}
	for i, name := range names {
		if got[i].Name != name {
			t.Errorf("containers[%d].Name = %q, want %q", i, got[i].Name, name)
		}
	}
}

func TestParseImages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []Image
	}{
		{
			name:  "empty input",
			input: "",
			want:  []Image{},
		},
		{
			name:  "header only",
			input: imageHeader,
			want:  []Image{},
		},
		{
			name:  "two images",
			input: imageHeader + "\nnginx\tlatest\tsha256abcdef\t2024-05-01 10:00:00 +0000 UTC\t187MB\nalpine\t3.20\t91ef0af61f39\t2024-06-20 17:00:00 +0000 UTC\t7.8MB\n",
			want: []Image{
				{Repository: "nginx", Tag: "latest", ID: "sha256abcdef", Created: "2024-05-01 10:00:00 +0000 UTC", Size: "187MB"},
				{Repository: "alpine", Tag: "3.20", ID: "91ef0af61f39", Created: "2024-06-20 17:00:00 +0000 UTC", Size: "7.8MB"},
			},
		},
		{
			name:  "four fields dropped",
			input: imageHeader + "\nnginx\tlatest\tabc\t2024-05-01\nredis\t7\tdef\t2024-05-02\t40MB\n",
			want: []Image{
				{Repository: "redis", Tag: "7", ID: "def", Created: "2024-05-02", Size: "40MB"},
			},
		},
		{
			name:  "untagged image keeps placeholder text",
			input: imageHeader + "\n<none>\t<none>\t0123456789ab\t2024-01-01\t1.2GB\n",
			want: []Image{
				{Repository: "<none>", Tag: "<none>", ID: "0123456789ab", Created: "2024-01-01", Size: "1.2GB"},
			},
		},
		{
			name:  "trailing tab does not supply an empty size",
			input: imageHeader + "\nr\tt\tid\tcreated\t\nredis\t7\tdef\t2024-05-02\t40MB\t\n",
			want: []Image{
				{Repository: "redis", Tag: "7", ID: "def", Created: "2024-05-02", Size: "40MB"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ParseImages(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseImages() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParse_FreshSliceEachCall(t *testing.T) {
	t.Parallel()

	input := containerHeader + "\n1\ta\tx\tUp\n"
	first := ParseContainers(input)
	second := ParseContainers(input)

	first[0].Name = "changed"
	if second[0].Name != "a" {
		t.Error("expected parses to return independent slices")
	}
}

func TestImage_Reference(t *testing.T) {
	t.Parallel()

	img := Image{Repository: "ghcr.io/acme/api", Tag: "v1.2.0"}
	if got := img.Reference(); got != "ghcr.io/acme/api:v1.2.0" {
		t.Errorf("Reference() = %q", got)
	}
}
