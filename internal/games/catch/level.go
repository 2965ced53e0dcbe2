package catch

// updateLevel re-derives the level from the score and speeds up spawning
// when it rises. It reports whether the level changed.
func (g *Game) updateLevel() bool {
	level := g.prog.LevelForScore(g.session.Score)
	if level <= g.session.Level {
		return false
	}
	g.session.Level = level
	g.spawner.SetInterval(g.prog.SpawnInterval(level))
	return true
}
