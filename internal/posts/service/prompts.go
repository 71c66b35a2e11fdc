package service

import (
	"fmt"
	"strings"

	"github.com/postcraft/postcraft-gateway/internal/posts/domain"
	projectdomain "github.com/postcraft/postcraft-gateway/internal/projects/domain"
)

func postPrompt(userContext string) string {
	return fmt.Sprintf(`Based on the following context, generate a professional LinkedIn post.
The post should be engaging, include relevant hashtags, and follow LinkedIn best practices.

USER CONTEXT:
%s

LINKEDIN POST:`, userContext)
}

func regeneratePrompt(userContext string) string {
	return fmt.Sprintf(`Based on the following context, generate a NEW professional LinkedIn post.
This should be completely different from any previous generation: take a different angle, structure and opening.
The post should be engaging, include relevant hashtags, and follow LinkedIn best practices.

USER CONTEXT:
%s

NEW LINKEDIN POST:`, userContext)
}

func modifyPrompt(post string, action domain.Action) string {
	if action == domain.ActionReduce {
		return fmt.Sprintf(`Make this LinkedIn post more concise while preserving the key message.
Aim for about half the original length.

ORIGINAL POST:
%s

SHORTER LINKEDIN POST:`, post)
	}
	return fmt.Sprintf(`Expand this LinkedIn post with more details, examples, or insights.
Make it more compelling and detailed while maintaining professionalism.

ORIGINAL POST:
%s

EXPANDED LINKEDIN POST:`, post)
}

const singleCommentRule = `Respond with exactly one comment. Do not offer alternatives, numbered options, quotation marks, or any explanation before or after the comment.`

func commentPrompt(req domain.CommentRequest) string {
	if strings.TrimSpace(req.CurrentComment) != "" {
		refinement := strings.TrimSpace(req.Refinement)
		if refinement == "" {
			refinement = "Improve the comment while keeping it warm and professional."
		}
		return fmt.Sprintf(`You are refining a congratulatory LinkedIn comment.

POST AUTHOR:
%s

POST CONTENT:
%s

CURRENT COMMENT:
%s

REFINEMENT INSTRUCTIONS:
%s

Write a revised congratulatory comment that applies the refinement instructions.
%s

REVISED COMMENT:`, req.PostAuthor, req.PostText, req.CurrentComment, refinement, singleCommentRule)
	}

	var extra string
	if r := strings.TrimSpace(req.Refinement); r != "" {
		extra = "\nAdditional instructions: " + r + "\n"
	}
	return fmt.Sprintf(`Write a congratulatory LinkedIn comment on the following post by %s.
Mention %s by name, be genuine and specific to the post, and keep it to two or three sentences.
%s
POST CONTENT:
%s

%s

COMMENT:`, req.PostAuthor, req.PostAuthor, extra, req.PostText, singleCommentRule)
}

var projectStyleRules = []string{
	"Use a professional yet exciting tone.",
	"Open with an attention-grabbing first line.",
	"Highlight what makes the project innovative and its impact.",
	"Credit the team members by name.",
	"Include the provided links exactly as given, each on its own line.",
	"End with a clear call-to-action inviting readers to try, star, or read about the project.",
	"Keep it concise and finish with the provided hashtags.",
}

func projectPostPrompt(p projectdomain.Project) string {
	var b strings.Builder

	b.WriteString("Create a LinkedIn post announcing the following project.\n\n")
	b.WriteString("PROJECT TITLE:\n")
	b.WriteString(p.Title)
	b.WriteString("\n")

	if d := strings.TrimSpace(p.Description); d != "" {
		b.WriteString("\nPROJECT DESCRIPTION:\n")
		b.WriteString(d)
		b.WriteString("\n")
	}
	if team := TeamCredit(p.TeamLead, p.TeamMembers); team != "" {
		b.WriteString("\nTEAM:\n")
		b.WriteString(team)
		b.WriteString("\n")
	}
	if links := Links(p); links != "" {
		b.WriteString("\nLINKS:\n")
		b.WriteString(links)
		b.WriteString("\n")
	}

	b.WriteString("\nHASHTAGS:\n")
	b.WriteString(strings.Join(Hashtags(p.Tags), " "))
	b.WriteString("\n\nSTYLE REQUIREMENTS:\n")
	for i, rule := range projectStyleRules {
		fmt.Fprintf(&b, "%d. %s\n", i+1, rule)
	}
	b.WriteString("\nLINKEDIN POST:")
	return b.String()
}
