package project_info_test

import (
	"html/template"
	"testing"

	"github.com/brianvoe/gofakeit"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"

	"github.com/louiss0/projectinfo/project_info"
)

func TestProjectInfo(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Project Info Suite")
}

var _ = Describe("Project Info", func() {
	assert := assert.New(GinkgoT())

	Describe("the record", func() {
		It("should hold the literal values unchanged", func() {
			info := project_info.Get()

			assert.Equal("vite-plugin-ssr", info.ProjectName)
			assert.Equal(template.HTML("<code>vite-plugin-ssr</code>"), info.ProjectNameJsx)
			assert.Equal("0.4.134", info.ProjectVersion)
			assert.Equal("https://github.com/brillout/vite-plugin-ssr", info.GithubRepository)
			assert.Equal("https://github.com/brillout/vite-plugin-ssr/issues/new", info.GithubIssues)
			assert.Equal("https://github.com/brillout/vite-plugin-ssr/discussions", info.GithubDiscussions)
			assert.Equal("https://discord.com/invite/hfHhnJyVg8", info.DiscordInvite)
			assert.Equal("https://twitter.com/brillout", info.TwitterProfile)
		})

		It("should hand out copies", func() {
			info := project_info.Get()
			info.ProjectName = "something-else"

			assert.Equal("vite-plugin-ssr", project_info.Get().ProjectName)
		})

		It("should expose the parsed version", func() {
			v := project_info.Version()
			Expect(v).NotTo(BeNil())
			assert.Equal(uint64(0), v.Major())
			assert.Equal(uint64(4), v.Minor())
			assert.Equal(uint64(134), v.Patch())
		})
	})

	Describe("Keys", func() {
		It("should list keys in declaration order", func() {
			Expect(project_info.Keys()).To(Equal([]string{
				"projectName",
				"projectNameJsx",
				"projectVersion",
				"githubRepository",
				"githubIssues",
				"githubDiscussions",
				"discordInvite",
				"twitterProfile",
			}))
		})
	})

	Describe("Lookup", func() {
		DescribeTable("should find every key",
			func(key, expected string) {
				value, ok := project_info.Lookup(key)
				assert.True(ok)
				assert.Equal(expected, value)
			},
			Entry("projectName", project_info.KeyProjectName, "vite-plugin-ssr"),
			Entry("projectNameJsx", project_info.KeyProjectNameJsx, "<code>vite-plugin-ssr</code>"),
			Entry("projectVersion", project_info.KeyProjectVersion, "0.4.134"),
			Entry("githubRepository", project_info.KeyGithubRepository, "https://github.com/brillout/vite-plugin-ssr"),
			Entry("githubIssues", project_info.KeyGithubIssues, "https://github.com/brillout/vite-plugin-ssr/issues/new"),
			Entry("githubDiscussions", project_info.KeyGithubDiscussions, "https://github.com/brillout/vite-plugin-ssr/discussions"),
			Entry("discordInvite", project_info.KeyDiscordInvite, "https://discord.com/invite/hfHhnJyVg8"),
			Entry("twitterProfile", project_info.KeyTwitterProfile, "https://twitter.com/brillout"),
		)

		It("should report absent keys", func() {
			value, ok := project_info.Lookup("homepage-" + gofakeit.DomainName())
			assert.False(ok)
			assert.Empty(value)
		})

		It("should be case sensitive", func() {
			_, ok := project_info.Lookup("ProjectName")
			assert.False(ok)
		})
	})

	Describe("Entries", func() {
		It("should tag every entry with its kind", func() {
			kinds := map[string]project_info.Kind{}
			for _, e := range project_info.Entries() {
				kinds[e.Key] = e.Kind
			}

			assert.Equal(project_info.KindText, kinds["projectName"])
			assert.Equal(project_info.KindMarkup, kinds["projectNameJsx"])
			assert.Equal(project_info.KindText, kinds["projectVersion"])
			assert.Equal(project_info.KindURL, kinds["discordInvite"])
		})

		It("should return only URLs from Links", func() {
			links := project_info.Get().Links()
			assert.Len(links, 5)
			for _, l := range links {
				assert.Equal(project_info.KindURL, l.Kind)
			}
		})
	})

	Describe("Validate", func() {
		var info project_info.ProjectInfo

		BeforeEach(func() {
			info = project_info.Get()
		})

		It("should accept the shipped record", func() {
			v, err := info.Validate()
			assert.NoError(err)
			assert.Equal("0.4.134", v.String())
		})

		It("should reject a non semver version", func() {
			info.ProjectVersion = "0.4"
			_, err := info.Validate()
			assert.ErrorContains(err, "is not semver")
		})

		It("should reject plain http links", func() {
			info.DiscordInvite = "http://" + gofakeit.DomainName()
			_, err := info.Validate()
			assert.ErrorContains(err, "DiscordInvite")
		})

		It("should reject empty fields", func() {
			info.ProjectName = ""
			_, err := info.Validate()
			assert.ErrorContains(err, "ProjectName")
		})
	})

	Describe("CodeMarkup", func() {
		It("should escape the name it wraps", func() {
			assert.Equal(template.HTML("<code>a&lt;b</code>"), project_info.CodeMarkup("a<b"))
		})
	})
})
