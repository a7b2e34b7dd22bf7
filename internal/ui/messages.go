package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/soundsphere/internal/playback"
)

type (
	stateChangedMsg    playback.StateChange
	trackChangedMsg    playback.TrackChange
	positionChangedMsg playback.PositionChange
	modeChangedMsg     playback.ModeChange
	volumeChangedMsg   playback.VolumeChange
	playbackErrorMsg   playback.ErrorEvent
)

// Each waiter blocks on one subscription channel and re-arms itself
// from Update after delivering its message.

func waitForState(sub *playback.Subscription) tea.Cmd {
	return func() tea.Msg {
		select {
		case e := <-sub.StateChanged:
			return stateChangedMsg(e)
		case <-sub.Done:
			return nil
		}
	}
}

func waitForTrack(sub *playback.Subscription) tea.Cmd {
	return func() tea.Msg {
		select {
		case e := <-sub.TrackChanged:
			return trackChangedMsg(e)
		case <-sub.Done:
			return nil
		}
	}
}

func waitForPosition(sub *playback.Subscription) tea.Cmd {
	return func() tea.Msg {
		select {
		case e := <-sub.PositionChanged:
			return positionChangedMsg(e)
		case <-sub.Done:
			return nil
		}
	}
}

func waitForMode(sub *playback.Subscription) tea.Cmd {
	return func() tea.Msg {
		select {
		case e := <-sub.ModeChanged:
			return modeChangedMsg(e)
		case <-sub.Done:
			return nil
		}
	}
}

func waitForVolume(sub *playback.Subscription) tea.Cmd {
	return func() tea.Msg {
		select {
		case e := <-sub.VolumeChanged:
			return volumeChangedMsg(e)
		case <-sub.Done:
			return nil
		}
	}
}

func waitForError(sub *playback.Subscription) tea.Cmd {
	return func() tea.Msg {
		select {
		case e := <-sub.Error:
			return playbackErrorMsg(e)
		case <-sub.Done:
			return nil
		}
	}
}
