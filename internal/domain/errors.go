package domain

import "errors"

var (
	// ErrNoQuestions is returned when a series is started with an empty
	// question pool after every fallback has been tried.
	ErrNoQuestions = errors.New("no questions available to start a series")
	// ErrPackNotFound indicates the requested question pack could not be loaded.
	ErrPackNotFound = errors.New("question pack not found")
)
