package main

import (
	"fmt"

	"github.com/mstanek/scout"
)

// Run executes the pitch command.
func (c *PitchCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scout.ErrorMessage(err))
		return err
	}

	channel, err := deps.Channels.ReadChannel(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scout.ErrorMessage(err))
		return err
	}

	profile := scout.ChannelProfile{
		ChannelName: channel.Title,
		Description: channel.Description,
	}

	// The page body usually carries a fuller about section than the
	// meta description. Keep whichever is longer.
	if deps.Extractor != nil && deps.Converter != nil {
		if extracted, err := deps.Extractor.Extract(html); err == nil {
			if md, err := deps.Converter.Convert(extracted.ContentHTML); err == nil && len(md) > len(profile.Description) {
				profile.Description = md
			}
		}
	}

	if feedURL := channel.FeedURL(); feedURL != "" && deps.Feeds != nil {
		videos, err := deps.Feeds.RecentVideos(deps.Ctx, feedURL, c.Videos)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "warning: could not fetch recent videos: %s\n", scout.ErrorMessage(err))
		} else {
			profile.RecentVideos = videos
		}
	}

	pitch, err := deps.Pitcher.Pitch(deps.Ctx, profile)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scout.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Subject: %s\n\n%s\n", pitch.SubjectLine, pitch.FirstLine)
	return nil
}
