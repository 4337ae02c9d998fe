package catalog

// #region default-catalog

// Default returns the built-in comparison catalog: 20 style dimensions,
// 4 mutually exclusive stances each. Order matters only for dedup (first
// occurrence of an id wins when merged with derived entries).
func Default() []Entry {
	return []Entry{
		// opening style
		{ID: "opening-cold", Topic: "opening-style", Prompt: "Open cold on the punchline before any context", Archetype: DesignationMaverick},
		{ID: "opening-context", Topic: "opening-style", Prompt: "Set up the full context before the payoff lands", Archetype: DesignationScholar},
		{ID: "opening-question", Topic: "opening-style", Prompt: "Open with a direct question to the viewer", Archetype: DesignationHost},
		{ID: "opening-visual", Topic: "opening-style", Prompt: "Open on a striking visual with no words at all", Archetype: DesignationOracle},

		// pacing
		{ID: "pacing-rapid", Topic: "pacing", Prompt: "Cut every two seconds, never let the eye rest", Archetype: DesignationEvangelist},
		{ID: "pacing-slow", Topic: "pacing", Prompt: "Let shots breathe, hold longer than feels safe", Archetype: DesignationOracle},
		{ID: "pacing-build", Topic: "pacing", Prompt: "Start slow and accelerate toward the ending", Archetype: DesignationArchitect},
		{ID: "pacing-steady", Topic: "pacing", Prompt: "Keep one even rhythm from first frame to last"},

		// tone
		{ID: "tone-deadpan", Topic: "tone", Prompt: "Deliver everything deadpan, let the joke find itself", Archetype: DesignationOracle},
		{ID: "tone-warm", Topic: "tone", Prompt: "Talk like you're catching up with an old friend", Archetype: DesignationHost},
		{ID: "tone-urgent", Topic: "tone", Prompt: "Keep the energy urgent, like the news can't wait", Archetype: DesignationEvangelist},
		{ID: "tone-wry", Topic: "tone", Prompt: "Stay wry and a little detached from your own topic", Archetype: DesignationCurator},

		// hook style
		{ID: "hook-contrarian", Topic: "hook-style", Prompt: "Hook with a take most of your audience disagrees with", Archetype: DesignationMaverick},
		{ID: "hook-promise", Topic: "hook-style", Prompt: "Hook by promising a concrete result up front", Archetype: DesignationEvangelist},
		{ID: "hook-story", Topic: "hook-style", Prompt: "Hook with the first line of a story, mid-scene", Archetype: DesignationHost},
		{ID: "hook-stat", Topic: "hook-style", Prompt: "Hook with one number nobody expects", Archetype: DesignationScholar},

		// risk posture
		{ID: "risk-spicy", Topic: "risk-posture", Prompt: "Post the spicy version and handle the replies later", Archetype: DesignationRenegade},
		{ID: "risk-safe", Topic: "risk-posture", Prompt: "Sand off anything that could be read two ways", Archetype: DesignationArchitect},
		{ID: "risk-selective", Topic: "risk-posture", Prompt: "Pick one fight per month, make it count", Archetype: DesignationMaverick},
		{ID: "risk-neutral", Topic: "risk-posture", Prompt: "Stay out of discourse entirely, let the work speak"},

		// visual density
		{ID: "density-maximal", Topic: "visual-density", Prompt: "Fill every frame: captions, overlays, b-roll, arrows", Archetype: DesignationEvangelist},
		{ID: "density-minimal", Topic: "visual-density", Prompt: "One subject, negative space, nothing else", Archetype: DesignationCurator},
		{ID: "density-layered", Topic: "visual-density", Prompt: "Layer detail that rewards a second watch", Archetype: DesignationScholar},
		{ID: "density-raw", Topic: "visual-density", Prompt: "Whatever the camera caught, no dressing", Archetype: DesignationRenegade},

		// narrative
		{ID: "narrative-arc", Topic: "narrative", Prompt: "Every post is a tiny three-act story", Archetype: DesignationHost},
		{ID: "narrative-list", Topic: "narrative", Prompt: "Skip narrative, give people the list", Archetype: DesignationArchitect},
		{ID: "narrative-thread", Topic: "narrative", Prompt: "Serialize one long story across many posts", Archetype: DesignationScholar},
		{ID: "narrative-fragment", Topic: "narrative", Prompt: "Post fragments and let the audience assemble them", Archetype: DesignationOracle},

		// format
		{ID: "format-talking-head", Topic: "format", Prompt: "You, a camera, one take", Archetype: DesignationHost},
		{ID: "format-doc", Topic: "format", Prompt: "Mini documentary: location, interviews, score", Archetype: DesignationScholar},
		{ID: "format-meme", Topic: "format", Prompt: "Ride the format of the week before it dies", Archetype: DesignationMaverick},
		{ID: "format-carousel", Topic: "format", Prompt: "Designed slides people save and send", Archetype: DesignationCurator},

		// caption length
		{ID: "caption-one-line", Topic: "caption-length", Prompt: "One line, under ten words, no hashtags", Archetype: DesignationCurator},
		{ID: "caption-essay", Topic: "caption-length", Prompt: "The caption is the essay; the image is the door", Archetype: DesignationScholar},
		{ID: "caption-cta", Topic: "caption-length", Prompt: "Short caption, hard call to action, every time", Archetype: DesignationEvangelist},
		{ID: "caption-none", Topic: "caption-length", Prompt: "No caption. If it needs one, it isn't done", Archetype: DesignationOracle},

		// emoji use
		{ID: "emoji-never", Topic: "emoji-use", Prompt: "Never use emoji, the words carry it", Archetype: DesignationCurator},
		{ID: "emoji-punctuate", Topic: "emoji-use", Prompt: "One emoji as punctuation, never decoration"},
		{ID: "emoji-loud", Topic: "emoji-use", Prompt: "Emoji everywhere, this is not a gallery", Archetype: DesignationEvangelist},
		{ID: "emoji-ironic", Topic: "emoji-use", Prompt: "Only ironically, and only the weird ones", Archetype: DesignationRenegade},

		// call to action
		{ID: "cta-direct", Topic: "cta-style", Prompt: "Tell people exactly what to do next, every post", Archetype: DesignationEvangelist},
		{ID: "cta-soft", Topic: "cta-style", Prompt: "Invite, never instruct: 'if this lands, stick around'", Archetype: DesignationHost},
		{ID: "cta-never", Topic: "cta-style", Prompt: "No asks. The work is the ask", Archetype: DesignationCurator},
		{ID: "cta-cliffhanger", Topic: "cta-style", Prompt: "End mid-thought so the next post is the CTA", Archetype: DesignationMaverick},

		// color grade
		{ID: "color-natural", Topic: "color-grade", Prompt: "True-to-life color, no grade you can name"},
		{ID: "color-moody", Topic: "color-grade", Prompt: "Crushed blacks and one accent color", Archetype: DesignationOracle},
		{ID: "color-bright", Topic: "color-grade", Prompt: "Bright, saturated, reads from across the room", Archetype: DesignationEvangelist},
		{ID: "color-signature", Topic: "color-grade", Prompt: "One signature grade on everything, forever", Archetype: DesignationArchitect},

		// music
		{ID: "music-trending", Topic: "music", Prompt: "Always the trending sound, even when it's wrong", Archetype: DesignationMaverick},
		{ID: "music-licensed", Topic: "music", Prompt: "A consistent sonic identity you actually license", Archetype: DesignationArchitect},
		{ID: "music-none", Topic: "music", Prompt: "Room tone. Let silence do the work", Archetype: DesignationOracle},
		{ID: "music-voice", Topic: "music", Prompt: "Your voice is the soundtrack, music stays under it", Archetype: DesignationHost},

		// editing rhythm
		{ID: "editing-invisible", Topic: "editing-rhythm", Prompt: "Invisible edits, nobody should notice a cut", Archetype: DesignationArchitect},
		{ID: "editing-jump", Topic: "editing-rhythm", Prompt: "Hard jump cuts as a texture of their own", Archetype: DesignationRenegade},
		{ID: "editing-match", Topic: "editing-rhythm", Prompt: "Cut on beat, every transition motivated", Archetype: DesignationCurator},
		{ID: "editing-long", Topic: "editing-rhythm", Prompt: "One unbroken take whenever you can pull it off"},

		// authenticity
		{ID: "authenticity-polished", Topic: "authenticity", Prompt: "Polish everything; rough is just unfinished", Archetype: DesignationArchitect},
		{ID: "authenticity-raw", Topic: "authenticity", Prompt: "Post the messy take, people trust mess", Archetype: DesignationRenegade},
		{ID: "authenticity-curated", Topic: "authenticity", Prompt: "Curated candidness: planned, but it breathes", Archetype: DesignationCurator},
		{ID: "authenticity-process", Topic: "authenticity", Prompt: "Show the process, failures included", Archetype: DesignationScholar},

		// humor
		{ID: "humor-dry", Topic: "humor", Prompt: "Dry humor buried where only regulars find it", Archetype: DesignationOracle},
		{ID: "humor-broad", Topic: "humor", Prompt: "Broad jokes that need zero context", Archetype: DesignationEvangelist},
		{ID: "humor-self", Topic: "humor", Prompt: "Self-deprecation as the default register", Archetype: DesignationHost},
		{ID: "humor-none", Topic: "humor", Prompt: "Not a comedy account. Keep it straight"},

		// polish
		{ID: "polish-broadcast", Topic: "polish", Prompt: "Broadcast-grade or it doesn't ship", Archetype: DesignationArchitect},
		{ID: "polish-phone", Topic: "polish", Prompt: "Shot on a phone and proud of it", Archetype: DesignationRenegade},
		{ID: "polish-selective", Topic: "polish", Prompt: "Polish the thumbnail, loosen the rest", Archetype: DesignationMaverick},
		{ID: "polish-consistent", Topic: "polish", Prompt: "Same finish on everything, big or small", Archetype: DesignationCurator},

		// video length
		{ID: "length-short", Topic: "video-length", Prompt: "Under thirty seconds or it gets split", Archetype: DesignationEvangelist},
		{ID: "length-long", Topic: "video-length", Prompt: "As long as the idea needs, even twenty minutes", Archetype: DesignationScholar},
		{ID: "length-mixed", Topic: "video-length", Prompt: "Shorts to pull people in, long-form to keep them", Archetype: DesignationArchitect},
		{ID: "length-loop", Topic: "video-length", Prompt: "Build for the rewatch loop, not the runtime", Archetype: DesignationMaverick},

		// posting cadence
		{ID: "cadence-daily", Topic: "posting-cadence", Prompt: "Daily, no exceptions, volume is the strategy", Archetype: DesignationEvangelist},
		{ID: "cadence-weekly", Topic: "posting-cadence", Prompt: "One considered post a week", Archetype: DesignationCurator},
		{ID: "cadence-burst", Topic: "posting-cadence", Prompt: "Post in bursts when the idea is hot, then vanish", Archetype: DesignationRenegade},
		{ID: "cadence-schedule", Topic: "posting-cadence", Prompt: "A published schedule the audience can set a clock by", Archetype: DesignationArchitect},

		// trend posture
		{ID: "trend-first", Topic: "trend-posture", Prompt: "Be first on a trend even if it's half-baked", Archetype: DesignationMaverick},
		{ID: "trend-twist", Topic: "trend-posture", Prompt: "Arrive late with the version nobody else saw", Archetype: DesignationOracle},
		{ID: "trend-ignore", Topic: "trend-posture", Prompt: "Ignore trends, compound your own formats", Archetype: DesignationScholar},
		{ID: "trend-selective", Topic: "trend-posture", Prompt: "Join a trend only when it fits the catalog"},

		// comments posture
		{ID: "comments-reply-all", Topic: "comments", Prompt: "Reply to every comment in the first hour", Archetype: DesignationHost},
		{ID: "comments-pin", Topic: "comments", Prompt: "Pin the best reply and step back", Archetype: DesignationCurator},
		{ID: "comments-stir", Topic: "comments", Prompt: "Reply to the haters first, it feeds the post", Archetype: DesignationRenegade},
		{ID: "comments-silent", Topic: "comments", Prompt: "Never read the comments", Archetype: DesignationOracle},

		// thumbnail style
		{ID: "thumb-face", Topic: "thumbnail", Prompt: "Your face, big emotion, every time", Archetype: DesignationEvangelist},
		{ID: "thumb-text", Topic: "thumbnail", Prompt: "Three words on a flat color", Archetype: DesignationCurator},
		{ID: "thumb-frame", Topic: "thumbnail", Prompt: "An actual frame from the video, untouched", Archetype: DesignationRenegade},
		{ID: "thumb-system", Topic: "thumbnail", Prompt: "A templated system a stranger could recognize", Archetype: DesignationArchitect},

		// collaboration
		{ID: "collab-often", Topic: "collaboration", Prompt: "Collaborate constantly, borrowed audiences compound", Archetype: DesignationEvangelist},
		{ID: "collab-rare", Topic: "collaboration", Prompt: "Rarely, and only with people you'd watch anyway", Archetype: DesignationCurator},
		{ID: "collab-solo", Topic: "collaboration", Prompt: "Solo voice only; collabs dilute it", Archetype: DesignationOracle},
		{ID: "collab-community", Topic: "collaboration", Prompt: "Make the audience the collaborator", Archetype: DesignationHost},
	}
}

// #endregion default-catalog
