// Package eventcore is a prioritized event dispatcher for 2D game UIs.
//
// A [Manager] routes touch, mouse and named custom events to registered
// [Listener] values. Listeners are ordered either by a fixed integer priority
// or by the position of an anchor node in a scene graph, so the element drawn
// on top receives input first.
//
// # Quick start
//
//	tree := eventcore.NewTree()
//	button := tree.NewUINode("button", eventcore.UITransform{
//		HitArea: eventcore.HitRect{Width: 80, Height: 32},
//	})
//	tree.Root().AddChild(button)
//
//	m := eventcore.NewManager(tree, eventcore.ConfigFromEnv())
//	m.AddListener(eventcore.NewTouchListener(eventcore.TouchCallbacks{
//		OnTouchBegan: func(t *eventcore.Touch, e *eventcore.Event) bool {
//			return button.HitTest(t.X, t.Y)
//		},
//	}), eventcore.Anchor(button.ID))
//
// Feed platform input through [Manager.DispatchEvent], or use the
// ebiteninput package to translate Ebitengine input each frame.
//
// # Scene graph
//
// The manager talks to the scene through the [SceneGraph] interface and stores
// only [NodeID] values. [Tree] is a small arena implementation; games with
// their own hierarchy implement SceneGraph directly. A graph that also
// implements [ActivationNotifier] tells the manager when nodes are toggled or
// reordered, so listener order is recomputed on the next dispatch. Without it,
// call [Manager.MarkNodeDirty] after such changes. Listeners on inactive
// anchors are skipped at dispatch; pausing is explicit through
// [Manager.PauseTarget].
//
// # Dispatch order
//
// Each event type has its own listener partition. Listeners with a negative
// fixed priority run first, then scene-graph listeners (higher camera priority
// first, then front-to-back by sibling order, descendants before ancestors),
// then listeners with a positive fixed priority. A listener whose anchor is
// gone or inactive is skipped.
//
// # Touch claims
//
// A touch listener claims a touch by returning true from OnTouchBegan and then
// receives the moves, end and cancel of that touch. In single-touch mode (the
// default) one claimed touch blocks new touches until it ends. Set
// [Config.MultiTouch] to allow concurrent claims. [Listener.SwallowTouches]
// hides a claimed touch from the listeners after the claimant.
//
// # Re-entrancy
//
// Callbacks may add or remove listeners, and may dispatch further events.
// Changes made during a dispatch are recorded and applied once the outermost
// dispatch returns; removed listeners stop receiving events immediately.
// Panics in callbacks are recovered and logged.
//
// # ECS integration
//
// [Manager.SetEntityStore] forwards every delivery to a scene-graph listener
// as an [InteractionEvent]. The ecs module provides a Donburi-backed store.
package eventcore
