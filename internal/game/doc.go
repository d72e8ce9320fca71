// Package game is the umbrella for the textcraft rules engine.
//
// Subpackages, leaf first:
//   - economy: static prices, yields and costs.
//   - item: the closed collectible and consumable catalogs.
//   - inventory: fixed-capacity slotted storage.
//   - account: identity, balance and tool level.
//   - player: the session entity with health, depth and the mining model.
//   - roster: registration, lookup and money ranking of sessions.
package game
