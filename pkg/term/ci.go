package term

import (
	"os"
)

type CI string

var GitHubCI CI = "github"
var GitLabCI CI = "gitlab"
var UnknownCI CI = "unknown"
var NoCI CI = "none"

func (c CI) IsCI() bool {
	return c != NoCI
}

// DetectCI inspects the process environment. The spinner never calls this
// itself; callers pass the result in through configuration.
func DetectCI() CI {
	return detectCI(os.LookupEnv)
}

func detectCI(lookup func(string) (string, bool)) CI {
	if _, gitlab := lookup("GITLAB_CI"); gitlab {
		return GitLabCI
	} else if _, github := lookup("GITHUB_ACTIONS"); github {
		return GitHubCI
	} else if _, ci := lookup("CI"); ci {
		return UnknownCI
	}

	return NoCI
}
