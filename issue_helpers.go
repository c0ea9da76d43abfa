package recjson

import "github.com/recjson/recjson/i18n"

// issueAt creates a single-issue error at the given path with a localized
// message for code. Params, when present, are kept structured on the Issue.
func issueAt(path, code string, params map[string]any) Issues {
	return Issues{Issue{Path: path, Code: code, Message: i18n.T(code, nil), Params: params}}
}

// issueWithHint is issueAt with a call-site hint attached.
func issueWithHint(path, code, hint string, params map[string]any) Issues {
	return Issues{Issue{Path: path, Code: code, Message: i18n.T(code, nil), Hint: hint, Params: params}}
}

// prefixIssues rebases the paths of nested Issues under path. Non-Issues
// errors pass through untouched so foreign failures stay recognizable.
func prefixIssues(path string, err error) error {
	if err == nil || path == "" {
		return err
	}
	iss, ok := AsIssues(err)
	if !ok {
		return err
	}
	out := make(Issues, len(iss))
	for i, it := range iss {
		if it.Path == "/" {
			it.Path = path
		} else {
			it.Path = path + it.Path
		}
		out[i] = it
	}
	return out
}
