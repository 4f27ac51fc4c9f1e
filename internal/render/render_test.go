package render_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/joho/godotenv"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"

	"github.com/louiss0/projectinfo/custom_errors"
	"github.com/louiss0/projectinfo/internal/render"
	"github.com/louiss0/projectinfo/project_info"
)

func TestRender(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Render Suite")
}

// assertKeyOrder checks that every key appears in output in the record's order.
func assertKeyOrder(assert *assert.Assertions, output string, keys []string) {
	last := -1
	for _, k := range keys {
		idx := strings.Index(output, k)
		assert.Greater(idx, last, "key %s is out of order", k)
		last = idx
	}
}

var _ = Describe("Render", func() {
	assert := assert.New(GinkgoT())

	var (
		buf  *bytes.Buffer
		info project_info.ProjectInfo
	)

	BeforeEach(func() {
		buf = new(bytes.Buffer)
		info = project_info.Get()
	})

	Describe("ParseFormat", func() {
		It("should accept every listed format", func() {
			for _, name := range render.Formats {
				f, err := render.ParseFormat(name)
				assert.NoError(err)
				assert.Equal(name, string(f))
			}
		})

		It("should reject unknown formats", func() {
			_, err := render.ParseFormat("xml")
			assert.ErrorIs(err, custom_errors.ErrUnknownFormat)
			assert.Contains(err.Error(), "json, yaml, toml, env, markdown, html, table")
		})
	})

	It("should fail on an unregistered format", func() {
		err := render.Record(buf, info, render.Format("pdf"))
		assert.ErrorIs(err, custom_errors.ErrUnknownFormat)
	})

	Describe("JSON", func() {
		It("should round trip every value", func() {
			Expect(render.Record(buf, info, render.JSON)).To(Succeed())

			var decoded project_info.ProjectInfo
			Expect(json.Unmarshal(buf.Bytes(), &decoded)).To(Succeed())
			assert.Equal(info, decoded)
		})

		It("should keep markup unescaped and keys ordered", func() {
			Expect(render.Record(buf, info, render.JSON)).To(Succeed())

			assert.Contains(buf.String(), `"projectNameJsx": "<code>vite-plugin-ssr</code>"`)
			assertKeyOrder(assert, buf.String(), project_info.Keys())
		})
	})

	Describe("YAML", func() {
		It("should round trip every value in order", func() {
			Expect(render.Record(buf, info, render.YAML)).To(Succeed())

			var decoded project_info.ProjectInfo
			Expect(yaml.Unmarshal(buf.Bytes(), &decoded)).To(Succeed())
			assert.Equal(info, decoded)
			assertKeyOrder(assert, buf.String(), project_info.Keys())
		})
	})

	Describe("TOML", func() {
		It("should round trip every value in order", func() {
			Expect(render.Record(buf, info, render.TOML)).To(Succeed())

			var decoded project_info.ProjectInfo
			Expect(toml.Unmarshal(buf.Bytes(), &decoded)).To(Succeed())
			assert.Equal(info, decoded)
			assertKeyOrder(assert, buf.String(), project_info.Keys())
		})
	})

	Describe("Env", func() {
		It("should write upper snake case variables", func() {
			Expect(render.Record(buf, info, render.Env)).To(Succeed())

			vars, err := godotenv.Unmarshal(buf.String())
			assert.NoError(err)
			assert.Equal("vite-plugin-ssr", vars["PROJECT_NAME"])
			assert.Equal("<code>vite-plugin-ssr</code>", vars["PROJECT_NAME_JSX"])
			assert.Equal("0.4.134", vars["PROJECT_VERSION"])
			assert.Equal(info.TwitterProfile, vars["TWITTER_PROFILE"])
			assert.Len(vars, 8)
			assertKeyOrder(assert, buf.String(), []string{"PROJECT_NAME=", "PROJECT_NAME_JSX", "PROJECT_VERSION", "GITHUB_REPOSITORY", "GITHUB_ISSUES", "GITHUB_DISCUSSIONS", "DISCORD_INVITE", "TWITTER_PROFILE"})
		})

		DescribeTable("EnvKey",
			func(key, expected string) {
				assert.Equal(expected, render.EnvKey(key))
			},
			Entry("single word", "name", "NAME"),
			Entry("camel case", "projectVersion", "PROJECT_VERSION"),
			Entry("trailing acronym style", "projectNameJsx", "PROJECT_NAME_JSX"),
		)
	})

	Describe("Markdown", func() {
		It("should render a table with links", func() {
			Expect(render.Record(buf, info, render.Markdown)).To(Succeed())

			out := buf.String()
			assert.True(strings.HasPrefix(out, "| Key | Value |\n| --- | --- |\n"))
			assert.Contains(out, "| `projectName` | `vite-plugin-ssr` |")
			assert.Contains(out, "| `projectNameJsx` | <code>vite-plugin-ssr</code> |")
			assert.Contains(out, "| `discordInvite` | [https://discord.com/invite/hfHhnJyVg8](https://discord.com/invite/hfHhnJyVg8) |")
			assert.Equal(10, strings.Count(out, "\n"))
		})

		It("should escape pipes", func() {
			err := render.Entries(buf, []project_info.Entry{{Key: "k", Value: "a|b", Kind: project_info.KindText}}, render.Markdown)
			assert.NoError(err)
			assert.Contains(buf.String(), "`a\\|b`")
		})
	})

	Describe("HTML", func() {
		It("should keep markup and escape text", func() {
			entries := []project_info.Entry{
				{Key: "markup", Value: "<code>x</code>", Kind: project_info.KindMarkup},
				{Key: "text", Value: "<b>", Kind: project_info.KindText},
				{Key: "link", Value: "https://example.com", Kind: project_info.KindURL},
			}
			Expect(render.Entries(buf, entries, render.HTML)).To(Succeed())

			out := buf.String()
			assert.Contains(out, `<dl class="project-info">`)
			assert.Contains(out, "<dd><code>x</code></dd>")
			assert.Contains(out, "<dd>&lt;b&gt;</dd>")
			assert.Contains(out, `<dd><a href="https://example.com">https://example.com</a></dd>`)
		})
	})

	Describe("Table", func() {
		It("should contain every key and value", func() {
			Expect(render.Record(buf, info, render.Table)).To(Succeed())

			for _, e := range info.Entries() {
				assert.Contains(buf.String(), e.Key)
				assert.Contains(buf.String(), e.Value)
			}
		})

		It("should write the bordered table as plain text", func() {
			Expect(render.Entries(buf, []project_info.Entry{{Key: "k", Value: "v", Kind: project_info.KindText}}, render.Table)).To(Succeed())

			out := buf.String()
			assert.True(strings.HasPrefix(out, "┌"))
			assert.True(strings.HasSuffix(out, "┘\n"))
			assert.NotContains(out, "\x1b[")
		})
	})

	Describe("Value", func() {
		It("should print the bare value without a format", func() {
			e, _ := info.Lookup(project_info.KeyProjectVersion)
			Expect(render.Value(buf, e, "")).To(Succeed())
			assert.Equal("0.4.134\n", buf.String())
		})

		It("should print a single key document with a format", func() {
			e, _ := info.Lookup(project_info.KeyGithubIssues)
			Expect(render.Value(buf, e, render.JSON)).To(Succeed())

			var decoded map[string]string
			Expect(json.Unmarshal(buf.Bytes(), &decoded)).To(Succeed())
			assert.Equal(map[string]string{"githubIssues": info.GithubIssues}, decoded)
		})
	})
})
